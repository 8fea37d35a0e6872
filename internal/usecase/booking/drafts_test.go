package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/availability"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/models"
)

type draftsFixture struct {
	*fixture
	store  *memoryDrafts
	seq    *availability.MemorySequencer
	drafts *Drafts
}

func newDraftsFixture() *draftsFixture {
	f := newFixture()
	df := &draftsFixture{
		fixture: f,
		store:   newMemoryDrafts(),
		seq:     availability.NewMemorySequencer(),
	}
	df.drafts = NewDrafts(df.store, f.repo, f.resolver, df.seq, f.submit, 60, zap.NewNop())
	return df
}

func ptr[T any](v T) *T { return &v }

func (f *draftsFixture) complete(t *testing.T) *domain.Draft {
	t.Helper()

	d, err := f.drafts.Create(context.Background())
	require.NoError(t, err)

	d, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{
		ServiceID:      ptr(f.coupe.ID),
		ToggleOptionID: ptr(f.brushing.ID),
		BarberID:       ptr(f.barber.ID),
		Date:           ptr("2026-10-19"),
		Time:           ptr("10:00"),
		Phone:          ptr("0612345678"),
	})
	require.NoError(t, err)
	return d
}

func TestDraftUpdateAccumulatesSelections(t *testing.T) {
	f := newDraftsFixture()
	d := f.complete(t)

	assert.Equal(t, 25.0, d.TotalPrice())
	assert.Equal(t, 65, d.TotalDuration())
	assert.Equal(t, "10:00", d.Time)

	stored, err := f.drafts.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.TotalPrice())

	d, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{ToggleOptionID: ptr(f.brushing.ID)})
	require.NoError(t, err)
	assert.Equal(t, 15.0, d.TotalPrice())
}

func TestDraftDateChangeClearsTime(t *testing.T) {
	f := newDraftsFixture()
	d := f.complete(t)

	d, err := f.drafts.Update(context.Background(), d.ID, DraftChanges{Date: ptr("2026-10-20")})
	require.NoError(t, err)
	assert.Empty(t, d.Time)
	assert.Equal(t, "2026-10-20", d.Date.Format("2006-01-02"))
}

func TestDraftBarberChangeClearsTimeAndAbsentDate(t *testing.T) {
	f := newDraftsFixture()
	present := models.Barber{ID: uuid.New(), Name: "Sofiane", IsActive: true}
	absent := models.Barber{ID: uuid.New(), Name: "Yanis", IsActive: true}
	f.repo.barbers[present.ID] = present
	f.repo.barbers[absent.ID] = absent
	f.repo.planning = append(f.repo.planning, models.PlanningEntry{
		Date: nextMonday, Kind: string(domain.KindBarberAbsence), BarberID: ptr(absent.ID),
	})

	d := f.complete(t)
	require.Equal(t, "10:00", d.Time)

	d, err := f.drafts.Update(context.Background(), d.ID, DraftChanges{BarberID: ptr(present.ID)})
	require.NoError(t, err)
	assert.Empty(t, d.Time)
	require.NotNil(t, d.Date)
	assert.True(t, d.Date.Equal(nextMonday))

	d, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{Time: ptr("11:00")})
	require.NoError(t, err)
	require.Equal(t, "11:00", d.Time)

	d, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{BarberID: ptr(absent.ID)})
	require.NoError(t, err)
	assert.Empty(t, d.Time)
	assert.Nil(t, d.Date)
	assert.Equal(t, absent.ID, d.Barber.ID)

	stored, err := f.drafts.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Date)
	assert.Empty(t, stored.Time)
}

func TestDraftRejectsUnselectableDates(t *testing.T) {
	f := newDraftsFixture()
	absentDay := nextMonday.AddDate(0, 0, 1)
	f.repo.planning = append(f.repo.planning, models.PlanningEntry{
		Date: absentDay, Kind: string(domain.KindBarberAbsence), BarberID: ptr(f.barber.ID),
	})
	d := f.complete(t)

	cases := map[string]string{
		"saturday":      "2026-10-24",
		"past":          "2026-10-15",
		"absence":       "2026-10-20",
		"beyond window": "2027-01-15",
	}
	for name, date := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.drafts.Update(context.Background(), d.ID, DraftChanges{Date: ptr(date)})

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, domain.ReasonNotSelectable, ve.Reason)
		})
	}

	_, err := f.drafts.Update(context.Background(), d.ID, DraftChanges{Date: ptr("19/10/2026")})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, domain.ReasonInvalid, ve.Reason)
}

func TestDraftTimeMustBeOpen(t *testing.T) {
	f := newDraftsFixture()
	_, err := f.submit.Execute(context.Background(), f.draft())
	require.NoError(t, err)

	d, err := f.drafts.Create(context.Background())
	require.NoError(t, err)

	_, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{Time: ptr("10:00")})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "barber", ve.Field)

	_, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{
		BarberID: ptr(f.barber.ID),
		Date:     ptr("2026-10-19"),
		Time:     ptr("10:00"),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "time", ve.Field)
	assert.Equal(t, domain.ReasonUnavailable, ve.Reason)

	_, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{
		BarberID: ptr(f.barber.ID),
		Date:     ptr("2026-10-19"),
		Time:     ptr("12:00"),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, domain.ReasonInvalid, ve.Reason)
}

func TestDraftRejectsUnknownCatalogEntries(t *testing.T) {
	f := newDraftsFixture()
	d, err := f.drafts.Create(context.Background())
	require.NoError(t, err)

	_, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{ServiceID: ptr(uuid.New())})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "service", ve.Field)

	_, err = f.drafts.Update(context.Background(), d.ID, DraftChanges{OptionIDs: &[]uuid.UUID{uuid.New()}})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "options", ve.Field)
}

func TestDraftSlotsClearsTakenTime(t *testing.T) {
	f := newDraftsFixture()
	d := f.complete(t)

	// Someone else books the same slot meanwhile.
	_, err := f.submit.Execute(context.Background(), f.draft())
	require.NoError(t, err)

	out, err := f.drafts.Slots(context.Background(), d.ID)
	require.NoError(t, err)
	assert.False(t, out.Stale)
	assert.NotContains(t, out.Slots.Labels, "10:00")
	assert.Empty(t, out.Draft.Time)

	stored, _ := f.drafts.Get(context.Background(), d.ID)
	assert.Empty(t, stored.Time)
}

func TestDraftSlotsFailOpen(t *testing.T) {
	f := newDraftsFixture()
	d := f.complete(t)
	f.repo.bookedErr = errStorage

	out, err := f.drafts.Slots(context.Background(), d.ID)
	require.NoError(t, err)
	assert.True(t, out.Slots.Degraded)
	assert.Equal(t, domain.FixedSlots(), out.Slots.Labels)
}

func TestDraftSlotsRequiresBarberAndDate(t *testing.T) {
	f := newDraftsFixture()
	d, err := f.drafts.Create(context.Background())
	require.NoError(t, err)

	_, err = f.drafts.Slots(context.Background(), d.ID)
	assert.True(t, domain.IsValidation(err))

	_, err = f.drafts.Slots(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// staleResolver issues a newer query for the same draft while answering.
type staleResolver struct {
	Availability
	seq availability.Sequencer
	key string
}

func (r staleResolver) OpenSlots(ctx context.Context, day time.Time, barberID uuid.UUID) availability.Slots {
	_, _ = r.seq.Next(ctx, r.key)
	return r.Availability.OpenSlots(ctx, day, barberID)
}

func TestDraftSlotsDiscardsStaleResponse(t *testing.T) {
	f := newDraftsFixture()
	d := f.complete(t)

	_, err := f.submit.Execute(context.Background(), f.draft())
	require.NoError(t, err)

	f.drafts.dates = staleResolver{Availability: f.resolver, seq: f.seq, key: d.ID.String()}

	out, err := f.drafts.Slots(context.Background(), d.ID)
	require.NoError(t, err)
	assert.True(t, out.Stale)

	stored, _ := f.drafts.Get(context.Background(), d.ID)
	assert.Equal(t, "10:00", stored.Time, "stale answers never touch the draft")
}

func TestDraftSubmitDeletesDraft(t *testing.T) {
	f := newDraftsFixture()
	d := f.complete(t)

	b, err := f.drafts.Submit(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, b.TotalPrice)

	_, err = f.drafts.Get(context.Background(), d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftSubmitIncompleteKeepsDraft(t *testing.T) {
	f := newDraftsFixture()
	d, err := f.drafts.Create(context.Background())
	require.NoError(t, err)

	_, err = f.drafts.Submit(context.Background(), d.ID)
	assert.True(t, domain.IsValidation(err))

	_, err = f.drafts.Get(context.Background(), d.ID)
	assert.NoError(t, err)
}

func TestAssembleBuildsCompleteDraft(t *testing.T) {
	f := newDraftsFixture()

	d, err := f.drafts.Assemble(context.Background(), DraftChanges{
		ServiceID: ptr(f.coupe.ID),
		OptionIDs: &[]uuid.UUID{f.brushing.ID},
		BarberID:  ptr(f.barber.ID),
		Date:      ptr("2026-10-19"),
		Time:      ptr("14:00"),
		Phone:     ptr("+33 6 12 34 56 78"),
		Email:     ptr("alice@example.fr"),
	})
	require.NoError(t, err)
	assert.NoError(t, d.Validate())
	assert.Equal(t, 25.0, d.TotalPrice())
}
