package repository

import (
	"context"

	"pkl-management-backend/app/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxTopCompanies membatasi jumlah perusahaan di daftar top_companies.
const maxTopCompanies = 10

// ReportFilter menentukan scope statistik. Field kosong berarti tidak difilter.
type ReportFilter struct {
	PeriodID  string
	CompanyID string
}

// CompanyCount adalah jumlah placement per perusahaan.
type CompanyCount struct {
	CompanyID  string `json:"company_id"`
	Placements int64  `json:"placements"`
}

// PlacementReport adalah hasil agregasi statistik PKL.
type PlacementReport struct {
	TotalPlacements int64            `json:"total_placements"`
	ByStatus        map[string]int64 `json:"by_status"`
	TopCompanies    []CompanyCount   `json:"top_companies"`
	Evaluations     int64            `json:"evaluations"`
	AverageTotal    *float64         `json:"average_total"` // null bila belum ada penilaian
}

// ReportRepository menjalankan query statistik langsung ke MongoDB.
type ReportRepository interface {
	PlacementStatistics(ctx context.Context, filter ReportFilter) (*PlacementReport, error)
}

type reportRepository struct {
	mongo *mongo.Database
}

// NewReportRepository membuat ReportRepository. db nil berarti ErrStorageUnavailable.
func NewReportRepository(mongoDB *mongo.Database) ReportRepository {
	return &reportRepository{mongo: mongoDB}
}

func buildPlacementMatch(filter ReportFilter) bson.M {
	match := bson.M{}
	if filter.PeriodID != "" {
		match["period_id"] = filter.PeriodID
	}
	if filter.CompanyID != "" {
		match["company_id"] = filter.CompanyID
	}
	return match
}

type countRow struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

// PlacementStatistics menghitung:
// - jumlah placement per status (total = jumlah semuanya)
// - perusahaan dengan placement terbanyak
// - jumlah dan rata-rata nilai akhir evaluasi untuk placement yang cocok
func (r *reportRepository) PlacementStatistics(ctx context.Context, filter ReportFilter) (*PlacementReport, error) {
	if r.mongo == nil {
		return nil, ErrStorageUnavailable
	}

	placementColl := model.CollectionFor(model.KindPlacement)
	coll := r.mongo.Collection(placementColl)
	match := buildPlacementMatch(filter)

	result := &PlacementReport{
		ByStatus:     map[string]int64{},
		TopCompanies: []CompanyCount{},
	}

	// 1) per status
	statusRows, err := aggregateCounts(ctx, coll, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, &BackendError{Op: OpRead, Collection: placementColl, Cause: err}
	}
	for _, row := range statusRows {
		if row.ID == "" {
			row.ID = "unknown"
		}
		result.ByStatus[row.ID] += row.Count
		result.TotalPlacements += row.Count
	}

	// 2) top perusahaan
	companyRows, err := aggregateCounts(ctx, coll, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$company_id", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: maxTopCompanies}},
	})
	if err != nil {
		return nil, &BackendError{Op: OpRead, Collection: placementColl, Cause: err}
	}
	for _, row := range companyRows {
		if row.ID == "" {
			continue
		}
		result.TopCompanies = append(result.TopCompanies, CompanyCount{CompanyID: row.ID, Placements: row.Count})
	}

	// 3) evaluasi; bila difilter, hanya evaluasi milik placement yang cocok
	evalColl := model.CollectionFor(model.KindEvaluation)
	evalMatch := bson.M{}
	if len(match) > 0 {
		ids, err := coll.Distinct(ctx, "_id", match)
		if err != nil {
			return nil, &BackendError{Op: OpRead, Collection: placementColl, Cause: err}
		}
		hexIDs := make([]string, 0, len(ids))
		for _, id := range ids {
			if oid, ok := id.(primitive.ObjectID); ok {
				hexIDs = append(hexIDs, oid.Hex())
			}
		}
		evalMatch["placement_id"] = bson.M{"$in": hexIDs}
	}

	cur, err := r.mongo.Collection(evalColl).Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: evalMatch}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"avg":   bson.M{"$avg": "$total"},
		}}},
	})
	if err != nil {
		return nil, &BackendError{Op: OpRead, Collection: evalColl, Cause: err}
	}
	defer cur.Close(ctx)

	var evalRows []struct {
		Count int64    `bson:"count"`
		Avg   *float64 `bson:"avg"`
	}
	if err := cur.All(ctx, &evalRows); err != nil {
		return nil, &BackendError{Op: OpRead, Collection: evalColl, Cause: err}
	}
	if len(evalRows) > 0 {
		result.Evaluations = evalRows[0].Count
		result.AverageTotal = evalRows[0].Avg
	}

	return result, nil
}

func aggregateCounts(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]countRow, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []countRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
