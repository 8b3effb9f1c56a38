package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Edmond40/hotel-management-system/models"
)

func TestFindConflictsOverlap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	user := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	existing := createTestReservation(t, db, user.ID, room.ID,
		date(2024, time.March, 1), date(2024, time.March, 5), models.ReservationConfirmed)

	conflicts, err := svc.FindConflicts(room.ID, date(2024, time.March, 3), date(2024, time.March, 6), 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, existing.ID, conflicts[0].ID)
}

func TestFindConflictsBackToBackAllowed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	user := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	createTestReservation(t, db, user.ID, room.ID,
		date(2024, time.March, 1), date(2024, time.March, 5), models.ReservationConfirmed)

	// starts on the existing check-out day
	conflicts, err := svc.FindConflicts(room.ID, date(2024, time.March, 5), date(2024, time.March, 8), 0)
	require.NoError(t, err)
	require.Empty(t, conflicts)

	// ends on the existing check-in day
	conflicts, err = svc.FindConflicts(room.ID, date(2024, time.February, 25), date(2024, time.March, 1), 0)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestFindConflictsIgnoresNonBlockingStatuses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	user := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	for _, status := range []models.ReservationStatus{
		models.ReservationPending, models.ReservationCancelled, models.ReservationCompleted,
	} {
		createTestReservation(t, db, user.ID, room.ID,
			date(2024, time.March, 1), date(2024, time.March, 5), status)
	}

	conflicts, err := svc.FindConflicts(room.ID, date(2024, time.March, 2), date(2024, time.March, 4), 0)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestFindConflictsExcludesGivenReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	user := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	existing := createTestReservation(t, db, user.ID, room.ID,
		date(2024, time.March, 1), date(2024, time.March, 5), models.ReservationConfirmed)

	conflicts, err := svc.FindConflicts(room.ID, date(2024, time.March, 2), date(2024, time.March, 6), existing.ID)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestFindConflictsMatchesBruteForce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	user := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	rng := rand.New(rand.NewSource(1))
	base := date(2024, time.January, 1)

	type interval struct {
		id       uint
		in, out  time.Time
		blocking bool
	}
	var existing []interval
	for i := 0; i < 40; i++ {
		start := base.AddDate(0, 0, rng.Intn(60))
		end := start.AddDate(0, 0, 1+rng.Intn(10))
		status := models.ReservationConfirmed
		blocking := true
		if rng.Intn(3) == 0 {
			status = models.ReservationPending
			blocking = false
		}
		r := createTestReservation(t, db, user.ID, room.ID, start, end, status)
		existing = append(existing, interval{id: r.ID, in: start, out: end, blocking: blocking})
	}

	for i := 0; i < 100; i++ {
		in := base.AddDate(0, 0, rng.Intn(70))
		out := in.AddDate(0, 0, 1+rng.Intn(10))

		want := map[uint]bool{}
		for _, e := range existing {
			if e.blocking && e.in.Before(out) && e.out.After(in) {
				want[e.id] = true
			}
		}

		got, err := svc.FindConflicts(room.ID, in, out, 0)
		require.NoError(t, err)
		require.Len(t, got, len(want), "range %s..%s", in.Format("2006-01-02"), out.Format("2006-01-02"))
		for _, r := range got {
			require.True(t, want[r.ID])
		}
	}
}

func TestAvailableRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	user := createTestUser(t, db, "guest", models.RoleGuest)

	free := createTestRoom(t, db, "101", models.RoomAvailable)
	booked := createTestRoom(t, db, "102", models.RoomAvailable)
	createTestRoom(t, db, "103", models.RoomMaintenance)

	createTestReservation(t, db, user.ID, booked.ID,
		date(2024, time.March, 1), date(2024, time.March, 5), models.ReservationConfirmed)

	rooms, err := svc.AvailableRooms(date(2024, time.March, 2), date(2024, time.March, 4))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, free.ID, rooms[0].ID)

	// the booked room frees up after the stay ends
	rooms, err = svc.AvailableRooms(date(2024, time.March, 5), date(2024, time.March, 7))
	require.NoError(t, err)
	require.Len(t, rooms, 2)
}
