package vacsrvc

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSrvc() *VacancySrvc {
	// file operations need a bucket; the CRUD paths under test do not
	return NewVacancySrvc(auth.NewGuard(), NewInMemVacancyRepo(), NewInMemVacancyFileRepo(), nil)
}

func managerActor() auth.Actor {
	return auth.NewActor(uuid.New(), auth.UserStateActive, []auth.Permission{
		auth.PermCreateVacancy,
		auth.PermUpdateVacancy,
		auth.PermDeleteVacancy,
		auth.PermGetVacancy,
	})
}

func TestVacancyCrud(t *testing.T) {
	srvc := newSrvc()
	actor := managerActor()
	ctx := context.Background()

	created, err := srvc.CreateVacancy(ctx, actor, CreateVacancyInput{
		Title:    "Go Intern",
		Content:  "summer internship",
		Type:     VacancyInternship,
		State:    VacancyOpened,
		TestTime: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.TestTime)
	assert.Equal(t, VacancyOpened, created.State)

	got, err := srvc.GetVacancy(ctx, actor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	title := "Go Intern 2026"
	state := VacancyClosed
	updated, err := srvc.UpdateVacancy(ctx, actor, created.ID, UpdateVacancyInput{
		Title: &title,
		State: &state,
	})
	require.NoError(t, err)
	assert.Equal(t, "Go Intern 2026", updated.Title)
	assert.Equal(t, VacancyClosed, updated.State)
	assert.Equal(t, created.Content, updated.Content)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, srvc.DeleteVacancy(ctx, actor, created.ID))
	_, err = srvc.GetVacancy(ctx, actor, created.ID)
	requireVacErrCode(t, err, ErrCodeVacancyNotFound)
}

func TestVacancyValidation(t *testing.T) {
	srvc := newSrvc()
	actor := managerActor()
	ctx := context.Background()

	_, err := srvc.CreateVacancy(ctx, actor, CreateVacancyInput{Title: "", Content: "c"})
	requireVacErrCode(t, err, ErrCodeInvalidVacancy)

	_, err = srvc.CreateVacancy(ctx, actor, CreateVacancyInput{
		Title: strings.Repeat("x", MaxTitleLen+1), Content: "c",
	})
	requireVacErrCode(t, err, ErrCodeInvalidVacancy)

	_, err = srvc.CreateVacancy(ctx, actor, CreateVacancyInput{Title: "t", Content: ""})
	requireVacErrCode(t, err, ErrCodeInvalidVacancy)

	_, err = srvc.CreateVacancy(ctx, actor, CreateVacancyInput{Title: "t", Content: "c", TestTime: -1})
	requireVacErrCode(t, err, ErrCodeInvalidVacancy)
}

func TestVacancyAccessControl(t *testing.T) {
	srvc := newSrvc()
	ctx := context.Background()

	noPerms := auth.NewActor(uuid.New(), auth.UserStateActive, nil)
	_, err := srvc.CreateVacancy(ctx, noPerms, CreateVacancyInput{Title: "t", Content: "c"})
	requireVacErrCode(t, err, auth.ErrCodeAccessDenied)

	blocked := auth.NewActor(uuid.New(), auth.UserStateBlocked, []auth.Permission{auth.PermGetVacancy})
	_, err = srvc.GetVacancy(ctx, blocked, uuid.New())
	requireVacErrCode(t, err, auth.ErrCodeAccessDenied)
}

func TestListVacanciesPaging(t *testing.T) {
	srvc := newSrvc()
	actor := managerActor()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := srvc.CreateVacancy(ctx, actor, CreateVacancyInput{
			Title: "v", Content: "c", State: VacancyOpened,
		})
		require.NoError(t, err)
	}

	page, err := srvc.ListVacancies(ctx, actor, 1, 2, "created_at")
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = srvc.ListVacancies(ctx, actor, 2, 2, "created_at")
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, err = srvc.ListVacancies(ctx, actor, 1, 9999, "created_at")
	require.NoError(t, err)
	assert.Len(t, page, 3)

	_, err = srvc.ListVacancies(ctx, actor, 0, 10, "created_at")
	requireVacErrCode(t, err, ErrCodePageNotFound)

	_, err = srvc.ListVacancies(ctx, actor, 1, -5, "created_at")
	requireVacErrCode(t, err, ErrCodeInvalidPerPage)
}

func TestClampPaging(t *testing.T) {
	limit, offset, err := clampPaging(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	limit, offset, err = clampPaging(3, 100)
	require.NoError(t, err)
	assert.Equal(t, perPageLimit, limit)
	assert.Equal(t, 2*perPageLimit, offset)

	_, _, err = clampPaging(0, 10)
	require.Error(t, err)
	_, _, err = clampPaging(1, 0)
	require.Error(t, err)
}

func requireVacErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var se *srvcerror.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, code, se.ErrorCode())
}
