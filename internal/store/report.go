package store

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/itemreport"
)

// reportRepo implements ReportRepo using the ent client.
type reportRepo struct {
	client *ent.Client
}

func (r *reportRepo) Insert(ctx context.Context, report ItemReport) error {
	builder := r.client.ItemReport.Create().
		SetItemID(report.ItemID).
		SetReason(report.Reason).
		SetDetails(report.Details)
	if report.LearnerID != 0 {
		builder = builder.SetLearnerID(report.LearnerID)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("insert item report: %w", err)
	}
	return nil
}

func (r *reportRepo) ListByItem(ctx context.Context, itemID int) ([]ItemReport, error) {
	rows, err := r.client.ItemReport.Query().
		Where(itemreport.ItemID(itemID)).
		Order(ent.Desc(itemreport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item reports: %w", err)
	}
	out := make([]ItemReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, ItemReport{
			ID:        row.ID,
			ItemID:    row.ItemID,
			LearnerID: row.LearnerID,
			Reason:    row.Reason,
			Details:   row.Details,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
