package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsroom-api/internal/domain/entity"
	"newsroom-api/internal/domain/repository"
)

type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database, coll string) *ArticleRepository {
	return &ArticleRepository{coll: db.Collection(coll)}
}

func (r *ArticleRepository) Insert(ctx context.Context, a *entity.Article) error {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// FindAll returns every article in database-default (insertion) order.
func (r *ArticleRepository) FindAll(ctx context.Context) ([]entity.Article, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	articles := make([]entity.Article, 0)
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id matches nothing
		return nil, repository.ErrNotFound
	}
	a := &entity.Article{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// UpdateFields overwrites the five caller-supplied fields in a single $set
// and returns the post-update document.
func (r *ArticleRepository) UpdateFields(ctx context.Context, id string, f repository.ArticleFields) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"title":       f.Title,
		"category":    f.Category,
		"status":      f.Status,
		"description": f.Description,
		"imageUrl":    f.ImageURL,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	a := &entity.Article{}
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ArticleRepository = (*ArticleRepository)(nil)
