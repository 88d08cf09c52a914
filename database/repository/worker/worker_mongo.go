package workerRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"fixmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultCandidateLimit = 10

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a repository over the "workers" collection.
func NewMongoWorkerRepo(coll *mongo.Collection) *MongoWorkerRepo {
	return &MongoWorkerRepo{coll: coll}
}

// BuildCandidateQuery translates a CandidateFilter into a Mongo filter document.
func BuildCandidateQuery(filter CandidateFilter) bson.M {
	query := bson.M{
		"isAvailable":        true,
		"verificationStatus": models.VerificationVerified,
	}

	var or bson.A
	for _, kw := range filter.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		or = append(or, bson.M{"skills": bson.M{"$regex": regexp.QuoteMeta(kw), "$options": "i"}})
	}

	var terms []string
	for _, term := range filter.DescriptionTerms {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, regexp.QuoteMeta(term))
		}
	}
	if len(terms) > 0 {
		or = append(or, bson.M{"bio": bson.M{"$regex": strings.Join(terms, "|"), "$options": "i"}})
	}

	if loc := strings.TrimSpace(filter.Location); loc != "" {
		or = append(or, bson.M{"location": bson.M{"$regex": regexp.QuoteMeta(loc), "$options": "i"}})
	}

	if len(or) > 0 {
		query["$or"] = or
	}
	return query
}

func (r *MongoWorkerRepo) QueryCandidates(ctx context.Context, filter CandidateFilter) ([]models.WorkerCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}, {Key: "totalReviews", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, BuildCandidateQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("candidate query failed: %w", err)
	}
	defer cursor.Close(ctx)

	workers := []models.WorkerCandidate{}
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("failed to decode workers: %w", err)
	}
	return workers, nil
}

func (r *MongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.WorkerCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.WorkerCandidate
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&worker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to fetch worker with id %s: %w", id, err)
	}
	return &worker, nil
}
