package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/job-board-api/internal/core/ports"
)

// dateSeries buckets documents by day on the given timestamp field,
// starting at from. Shared by the growth queries behind the analytics
// endpoints.
func dateSeries(ctx context.Context, coll *mongo.Collection, field string, from time.Time) ([]ports.DatePoint, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$gte": from}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$" + field}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("date series on %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode date series: %w", err)
	}

	points := make([]ports.DatePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ports.DatePoint{Date: row.ID, Count: row.Count})
	}
	return points, nil
}
