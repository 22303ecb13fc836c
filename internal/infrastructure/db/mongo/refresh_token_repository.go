package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

const refreshTokenCollection = "refresh_tokens"

type MongoRefreshTokenRepository struct {
	coll *mongo.Collection
}

func NewRefreshTokenRepository(db *mongo.Database) *MongoRefreshTokenRepository {
	return &MongoRefreshTokenRepository{coll: db.Collection(refreshTokenCollection)}
}

type mongoRefreshToken struct {
	ID        string `bson:"_id"`
	Username  string `bson:"username"`
	CreatedAt int64  `bson:"created_at"`
	ExpiresAt int64  `bson:"expires_at"`
}

func (r *MongoRefreshTokenRepository) Insert(ctx context.Context, token *domain.RefreshToken) error {
	doc := mongoRefreshToken{
		ID:        token.ID,
		Username:  token.Username,
		CreatedAt: token.CreatedAt.Unix(),
		ExpiresAt: token.ExpiresAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

func (r *MongoRefreshTokenRepository) FindByID(ctx context.Context, id string) (*domain.RefreshToken, error) {
	var mt mongoRefreshToken
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	return &domain.RefreshToken{
		ID:        mt.ID,
		Username:  mt.Username,
		CreatedAt: unixToTime(mt.CreatedAt),
		ExpiresAt: unixToTime(mt.ExpiresAt),
	}, nil
}

func (r *MongoRefreshTokenRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRefreshTokenNotFound
	}
	return nil
}
