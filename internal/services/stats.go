package services

import (
	"context"
	"math"

	"github.com/poofware/onboarding-service/internal/dtos"
	"github.com/poofware/onboarding-service/internal/models"
)

// Stats aggregates the whole collection. Three partitions each sum to the
// total: WEG/MV, active/archived, completed/in-progress/not-started.
func (s *PropertyService) Stats(ctx context.Context) (*dtos.PropertyStatsResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dtos.PropertyStatsResponse{TotalProperties: len(all)}

	completionSum := 0
	for _, p := range all {
		switch p.Type {
		case models.PropertyTypeWEG:
			out.WegProperties++
		case models.PropertyTypeMV:
			out.MvProperties++
		}
		switch p.Status {
		case models.PropertyStatusActive:
			out.ActiveProperties++
		case models.PropertyStatusArchived:
			out.ArchivedProperties++
		}
		switch {
		case p.Completed:
			out.CompletedProperties++
		case p.CompletionPercentage > 0:
			out.InProgressProperties++
		default:
			out.NotStartedProperties++
		}
		out.TotalUnits += p.UnitCount
		completionSum += p.CompletionPercentage
	}

	if len(all) > 0 {
		out.AverageUnitsPerProperty = int(math.Round(float64(out.TotalUnits) / float64(len(all))))
		out.AverageCompletionPercentage = int(math.Round(float64(completionSum) / float64(len(all))))
	}
	return out, nil
}
