package postgres

import (
	"context"
	"testing"

	"child-wallet/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlan() *domain.InvestmentPlan {
	return &domain.InvestmentPlan{
		ID:              "plan-1",
		ChildID:         "child-1",
		Investor:        "GGRAN",
		PlanType:        domain.PlanWeekly,
		AmountPerPeriod: decimal.NewFromInt(25),
		TotalPeriods:    3,
		NextPaymentDate: 1704672000,
		Status:          domain.PlanActive,
		CreatedAt:       1704067200,
	}
}

func planCols() []string {
	return []string{"id", "child_id", "investor", "plan_type", "amount_per_period", "total_periods",
		"completed_periods", "next_payment_date", "status", "created_at", "last_payment"}
}

func addPlanRow(rows *pgxmock.Rows, p *domain.InvestmentPlan) *pgxmock.Rows {
	return rows.AddRow(p.ID, p.ChildID, p.Investor, p.PlanType, p.AmountPerPeriod, p.TotalPeriods,
		p.CompletedPeriods, p.NextPaymentDate, p.Status, p.CreatedAt, p.LastPayment)
}

func TestPlanRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepo(mock)
	p := newTestPlan()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO investment_plans").
		WithArgs(p.ID, p.ChildID, p.Investor, p.PlanType, p.AmountPerPeriod, p.TotalPeriods,
			p.CompletedPeriods, p.NextPaymentDate, p.Status, p.CreatedAt, p.LastPayment).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Create(context.Background(), tx, p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepo(mock)
	p := newTestPlan()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM investment_plans WHERE id = .+ FOR UPDATE").
		WithArgs(p.ID).
		WillReturnRows(addPlanRow(pgxmock.NewRows(planCols()), p))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByIDForUpdate(context.Background(), tx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.PlanWeekly, got.PlanType)
	assert.True(t, got.AmountPerPeriod.Equal(p.AmountPerPeriod))
	assert.Equal(t, uint32(3), got.TotalPeriods)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM investment_plans WHERE id").
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows(planCols()))

	got, err := repo.GetByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlanRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepo(mock)
	p := newTestPlan()
	p.RecordPayment(p.NextPaymentDate)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE investment_plans SET completed_periods").
		WithArgs(uint32(1), p.NextPaymentDate, domain.PlanActive, p.LastPayment, p.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Update(context.Background(), tx, p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepo_ListByChild(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepo(mock)
	a, b := newTestPlan(), newTestPlan()
	b.ID = "plan-2"
	b.Status = domain.PlanPaused

	t.Run("all", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM investment_plans WHERE child_id = \$1 ORDER BY`).
			WithArgs("child-1").
			WillReturnRows(addPlanRow(addPlanRow(pgxmock.NewRows(planCols()), a), b))

		plans, err := repo.ListByChild(context.Background(), "child-1", nil)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "plan-1", plans[0].ID)
		assert.Equal(t, domain.PlanPaused, plans[1].Status)
	})

	t.Run("active only", func(t *testing.T) {
		active := domain.PlanActive
		mock.ExpectQuery(`SELECT .+ FROM investment_plans WHERE child_id = \$1 AND status = \$2`).
			WithArgs("child-1", active).
			WillReturnRows(addPlanRow(pgxmock.NewRows(planCols()), a))

		plans, err := repo.ListByChild(context.Background(), "child-1", &active)
		require.NoError(t, err)
		assert.Len(t, plans, 1)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT .+ FROM investment_plans").
			WithArgs("child-2").
			WillReturnRows(pgxmock.NewRows(planCols()))

		plans, err := repo.ListByChild(context.Background(), "child-2", nil)
		require.NoError(t, err)
		assert.NotNil(t, plans)
		assert.Empty(t, plans)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
