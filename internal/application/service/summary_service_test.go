package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

func TestSummaryService_Summarize(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	profileRepo := newFakeProfileRepo()
	require.NoError(t, profileRepo.Save(context.Background(), &entity.BusinessProfile{
		OwnerID:           "owner-1",
		RegistrationState: "Gujarat",
		InvoicePrefix:     "ABCD",
	}))
	docs := NewDocumentService(docRepo, profileRepo, nopLogger{})
	svc := NewSummaryService(docRepo, nopLogger{})
	ctx := context.Background()

	makeInvoice := func(date time.Time) *entity.Document {
		in := invoiceInput()
		in.Date = date
		doc, err := docs.Create(ctx, "owner-1", in)
		require.NoError(t, err)
		return doc
	}

	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)

	paid := makeInvoice(june)
	_, err := docs.TogglePaid(ctx, "owner-1", paid.ID)
	require.NoError(t, err)

	overdue := makeInvoice(june)
	_, err = docs.MarkOverdue(ctx, "owner-1", overdue.ID)
	require.NoError(t, err)

	makeInvoice(july) // stays unpaid

	billIn := invoiceInput()
	billIn.Kind = entity.KindPurchaseBill
	_, err = docs.Create(ctx, "owner-1", billIn)
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, "owner-1")
	require.NoError(t, err)

	assert.EqualValues(t, 3, summary.InvoiceCount)
	assert.EqualValues(t, 1, summary.PurchaseBillCount)
	assert.EqualValues(t, 1, summary.PaidCount)
	assert.EqualValues(t, 1, summary.UnpaidCount)
	assert.EqualValues(t, 1, summary.OverdueCount)

	// Every invoice totals 1534: one paid, two outstanding.
	assert.True(t, summary.Received.Equal(dec("1534")), "received = %s", summary.Received)
	assert.True(t, summary.Receivable.Equal(dec("3068")), "receivable = %s", summary.Receivable)
	assert.True(t, summary.Payable.Equal(dec("1534")), "payable = %s", summary.Payable)

	require.Len(t, summary.MonthlyRevenue, 2)
	byMonth := map[string]string{}
	for _, m := range summary.MonthlyRevenue {
		byMonth[m.Month] = m.Total.String()
	}
	assert.Equal(t, "3068", byMonth["2024-06"])
	assert.Equal(t, "1534", byMonth["2024-07"])
}

func TestSummaryService_EmptyCollection(t *testing.T) {
	svc := NewSummaryService(newFakeDocumentRepo(), nopLogger{})

	summary, err := svc.Summarize(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Zero(t, summary.InvoiceCount)
	assert.True(t, summary.Receivable.IsZero())
	assert.True(t, summary.Received.IsZero())
	assert.Empty(t, summary.MonthlyRevenue)
}
