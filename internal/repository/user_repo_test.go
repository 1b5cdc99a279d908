package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smartcampus-id/campus-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Course{}))
	return db
}

func seedUser(t *testing.T, repo UserRepository, username, email string, role model.UserRole, studentID *string) *model.User {
	t.Helper()
	user := &model.User{
		Username:  username,
		Email:     email,
		FirstName: "F",
		LastName:  "L",
		Role:      role,
		StudentID: studentID,
		IsActive:  true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func strPtr(s string) *string { return &s }

func TestExistsChecks(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "jdoe", "j@x.edu", model.RoleStudent, strPtr("STU000001"))

	for _, tc := range []struct {
		name   string
		check  func() (bool, error)
		expect bool
	}{
		{"username taken", func() (bool, error) { return repo.ExistsByUsername(ctx, "jdoe") }, true},
		{"username free", func() (bool, error) { return repo.ExistsByUsername(ctx, "other") }, false},
		{"email taken", func() (bool, error) { return repo.ExistsByEmail(ctx, "j@x.edu") }, true},
		{"student id taken", func() (bool, error) { return repo.ExistsByStudentID(ctx, "STU000001") }, true},
		{"employee id free", func() (bool, error) { return repo.ExistsByEmployeeID(ctx, "EMP000001") }, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.check()
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestCountByRole(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "s1", "s1@x.edu", model.RoleStudent, nil)
	seedUser(t, repo, "s2", "s2@x.edu", model.RoleStudent, nil)
	seedUser(t, repo, "t1", "t1@x.edu", model.RoleTeacher, nil)

	students, err := repo.CountByRole(ctx, model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), students)

	admins, err := repo.CountByRole(ctx, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), admins)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

// The unique index is the final guard: a second row with the same
// student_id must be rejected by the store even when the service-level
// checks were raced past.
func TestUniqueIndexRejectsDuplicateStudentID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "s1", "s1@x.edu", model.RoleStudent, strPtr("STU000001"))

	dup := &model.User{
		Username:  "s2",
		Email:     "s2@x.edu",
		FirstName: "F",
		LastName:  "L",
		Role:      model.RoleStudent,
		StudentID: strPtr("STU000001"),
		IsActive:  true,
	}
	err := repo.Create(ctx, dup)
	assert.Error(t, err)
}

func TestNullStudentIDsDoNotCollide(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	seedUser(t, repo, "t1", "t1@x.edu", model.RoleTeacher, nil)
	seedUser(t, repo, "t2", "t2@x.edu", model.RoleTeacher, nil)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestSearchUsesSubstringContainment(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "jdoe", "john.doe@x.edu", model.RoleStudent, nil)
	seedUser(t, repo, "asmith", "anna.smith@x.edu", model.RoleStudent, nil)

	matches, err := repo.Search(ctx, "doe")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = repo.Search(ctx, "@x.edu")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindPage(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "u1", "u1@x.edu", model.RoleStudent, nil)
	seedUser(t, repo, "u2", "u2@x.edu", model.RoleStudent, nil)
	seedUser(t, repo, "u3", "u3@x.edu", model.RoleStudent, nil)

	users, total, err := repo.FindPage(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 1)
}
