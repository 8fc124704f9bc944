package auth

// Permission names a single operation a user may be allowed to perform.
// Permission sets travel inside JWT claims as scopes.
type Permission string

const (
	PermStartTesting       Permission = "start_testing"
	PermCompleteTesting    Permission = "complete_testing"
	PermCreateTesting      Permission = "create_testing"
	PermUpdateTesting      Permission = "update_testing"
	PermDeleteTesting      Permission = "delete_testing"
	PermGetTesting         Permission = "get_testing"
	PermGetSelfTestResults Permission = "get_self_test_results"
	PermGetUserTestResults Permission = "get_user_test_results"

	PermCreateVacancy Permission = "create_vacancy"
	PermUpdateVacancy Permission = "update_vacancy"
	PermDeleteVacancy Permission = "delete_vacancy"
	PermGetVacancy    Permission = "get_vacancy"
)

// UserState is the account lifecycle state carried in claims. Only ACTIVE
// accounts may touch the testing or vacancy services.
type UserState int

const (
	UserStateNotConfirmed UserState = 0
	UserStateActive       UserState = 1
	UserStateBlocked      UserState = 2
	UserStateDeleted      UserState = 3
)
