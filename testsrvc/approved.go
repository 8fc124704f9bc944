package testsrvc

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/vacsrvc"
)

// GetApprovedUsers reports every (user, vacancy) pair where the user's best
// graded attempt meets the pass threshold of every testing the vacancy owns.
// No pagination: the approved set is the whole report.
func (s *TestingSrvc) GetApprovedUsers(ctx context.Context, actor auth.Actor) ([]ApprovedUser, error) {
	if err := s.require(actor, "approved_report"); err != nil {
		return nil, err
	}
	return s.attempts.ApprovedUsers(ctx)
}

// passedRow is one (user, vacancy, testing) row where the user's best
// attempt passed the testing. Repos produce these; buildApproved folds them
// into the report.
type passedRow struct {
	UserID uuid.UUID

	VacancyID        uuid.UUID
	VacancyTitle     string
	VacancyState     vacsrvc.VacancyState
	VacancyType      vacsrvc.VacancyType
	VacancyCreatedAt time.Time

	TestingID    uuid.UUID
	TestingTitle string
	BestPercent  int
}

type userVacancyKey struct {
	userID    uuid.UUID
	vacancyID uuid.UUID
}

// buildApproved groups passed rows by (user, vacancy) and keeps only groups
// covering every testing of the vacancy. totals maps vacancy id to its
// testing count. Output ordering is deterministic: user id, then vacancy id.
func buildApproved(rows []passedRow, totals map[uuid.UUID]int) []ApprovedUser {
	groups := make(map[userVacancyKey]*ApprovedUser)
	for _, row := range rows {
		key := userVacancyKey{userID: row.UserID, vacancyID: row.VacancyID}
		group, ok := groups[key]
		if !ok {
			group = &ApprovedUser{
				UserID:           row.UserID,
				VacancyID:        row.VacancyID,
				VacancyTitle:     row.VacancyTitle,
				VacancyState:     row.VacancyState,
				VacancyType:      row.VacancyType,
				VacancyCreatedAt: row.VacancyCreatedAt,
			}
			groups[key] = group
		}
		group.Testings = append(group.Testings, PassedTesting{
			ID:      row.TestingID,
			Title:   row.TestingTitle,
			Percent: row.BestPercent,
		})
	}

	approved := make([]ApprovedUser, 0, len(groups))
	for key, group := range groups {
		// every testing of the vacancy must be passed, not just some
		if len(group.Testings) != totals[key.vacancyID] {
			continue
		}
		sort.Slice(group.Testings, func(i, j int) bool {
			return group.Testings[i].ID.String() < group.Testings[j].ID.String()
		})
		approved = append(approved, *group)
	}

	sort.Slice(approved, func(i, j int) bool {
		if approved[i].UserID != approved[j].UserID {
			return approved[i].UserID.String() < approved[j].UserID.String()
		}
		return approved[i].VacancyID.String() < approved[j].VacancyID.String()
	})
	return approved
}
