package user

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/shift-scheduling/internal"
	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
	userModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/user"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockUserRepo struct {
	users []*userModel.User
	err   error
}

func (m *mockUserRepo) GetAll() ([]*userModel.User, error) {
	return m.users, m.err
}

func (m *mockUserRepo) GetByID(id string) (*userModel.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*userModel.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmployeeID(employeeID string) (*userModel.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(u *userModel.User) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepo) Update(u *userModel.User) error {
	for i, existing := range m.users {
		if existing.ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	return errors.New("not found")
}

func (m *mockUserRepo) Delete(id string) error {
	for i, existing := range m.users {
		if existing.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockUserRepo) DeleteNonAdmin() error {
	kept := m.users[:0]
	for _, u := range m.users {
		if u.Role == RoleAdmin {
			kept = append(kept, u)
		}
	}
	m.users = kept
	return nil
}

type mockEmployeeDirectory struct {
	employees []*employeeModel.Employee
	err       error
}

func (m *mockEmployeeDirectory) GetAll() ([]*employeeModel.Employee, error) {
	return m.employees, m.err
}

func (m *mockEmployeeDirectory) GetByID(id string) (*employeeModel.Employee, error) {
	for _, emp := range m.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return nil, nil
}

func (m *mockEmployeeDirectory) GetByCode(code string) (*employeeModel.Employee, error) {
	for _, emp := range m.employees {
		if strings.EqualFold(emp.Code, code) {
			return emp, nil
		}
	}
	return nil, nil
}

func (m *mockEmployeeDirectory) Update(emp *employeeModel.Employee) error {
	return nil
}

func strPtr(s string) *string { return &s }

var _ = ginkgo.Describe("FindByCredential", func() {
	var (
		repo      *mockUserRepo
		directory *mockEmployeeDirectory
		service   *Service
	)

	ginkgo.BeforeEach(func() {
		repo = &mockUserRepo{users: []*userModel.User{
			{ID: "u-admin", Username: "admin", Password: "secret-admin", Role: RoleAdmin, Status: StatusActive},
			{ID: "u-juan", Username: "juan perez", Password: "1234", Role: RoleEmployee, Status: StatusActive, EmployeeID: strPtr("e1")},
			{ID: "u-legacy", Username: "oldtimer", Password: "legacy-pass", Role: RoleEmployee, Status: StatusActive},
			{ID: "u-gone", Username: "maria gomez", Password: "1234", Role: RoleEmployee, Status: StatusInactive, EmployeeID: strPtr("e2")},
		}}
		directory = &mockEmployeeDirectory{employees: []*employeeModel.Employee{
			{ID: "e1", Code: "EMP001", Name: "Juan Perez"},
			{ID: "e2", Code: "EMP002", Name: "Maria Gomez"},
		}}
		service = NewService(repo, directory, slog.Default())
	})

	ginkgo.It("resolves the admin shortcut against the admin account only", func() {
		account, displayName, branch, err := service.FindByCredential("admin", "secret-admin")

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(account.ID).To(gomega.Equal("u-admin"))
		gomega.Expect(displayName).To(gomega.Equal("Administrador"))
		gomega.Expect(branch).To(gomega.Equal(BranchAdminShortcut))
	})

	ginkgo.It("rejects the admin shortcut with the wrong password", func() {
		_, _, _, err := service.FindByCredential("admin", "wrong")

		gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
	})

	ginkgo.It("resolves an employee code through the linked account", func() {
		account, displayName, branch, err := service.FindByCredential("EMP001", "1234")

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(account.ID).To(gomega.Equal("u-juan"))
		gomega.Expect(displayName).To(gomega.Equal("Juan Perez"))
		gomega.Expect(branch).To(gomega.Equal(BranchEmployeeCrossRef))
	})

	ginkgo.It("resolves an employee name case-insensitively", func() {
		account, _, branch, err := service.FindByCredential("juan perez", "1234")

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(account.ID).To(gomega.Equal("u-juan"))
		gomega.Expect(branch).To(gomega.Equal(BranchEmployeeCrossRef))
	})

	ginkgo.It("does not fall back to a legacy username once an employee matched", func() {
		// EMP002 matches an employee, so a wrong password must fail even
		// though a user named "oldtimer" exists.
		_, _, _, err := service.FindByCredential("EMP002", "legacy-pass")

		gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
	})

	ginkgo.It("falls back to the legacy username when no employee matches", func() {
		account, displayName, branch, err := service.FindByCredential("oldtimer", "legacy-pass")

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(account.ID).To(gomega.Equal("u-legacy"))
		gomega.Expect(displayName).To(gomega.Equal("oldtimer"))
		gomega.Expect(branch).To(gomega.Equal(BranchLegacyUsername))
	})

	ginkgo.It("rejects an inactive account after the credentials match", func() {
		_, _, _, err := service.FindByCredential("EMP002", "1234")

		gomega.Expect(err).To(gomega.Equal(internal.ErrAccountInactive))
	})

	ginkgo.It("rejects an unknown credential", func() {
		_, _, _, err := service.FindByCredential("nobody", "anything")

		gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
	})

	ginkgo.It("rejects an employee without a linked account", func() {
		directory.employees = append(directory.employees,
			&employeeModel.Employee{ID: "e3", Code: "EMP003", Name: "Carlos Ruiz"})

		_, _, _, err := service.FindByCredential("EMP003", "anything")

		gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
	})
})

var _ = ginkgo.Describe("LookupEmployee", func() {
	var service *Service

	ginkgo.BeforeEach(func() {
		repo := &mockUserRepo{users: []*userModel.User{
			{ID: "u-juan", Username: "juan perez", Password: "1234", Role: RoleEmployee, EmployeeID: strPtr("e1")},
		}}
		directory := &mockEmployeeDirectory{employees: []*employeeModel.Employee{
			{ID: "e1", Code: "EMP001", Name: "Juan Perez"},
			{ID: "e2", Code: "EMP002", Name: "Maria Gomez"},
		}}
		service = NewService(repo, directory, slog.Default())
	})

	ginkgo.It("returns the roster entry for an unclaimed code", func() {
		lookup, err := service.LookupEmployee("EMP002")

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(lookup.Name).To(gomega.Equal("Maria Gomez"))
	})

	ginkgo.It("rejects an unknown code", func() {
		_, err := service.LookupEmployee("EMP404")

		appErr, ok := internal.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeEmployeeNotFound))
	})

	ginkgo.It("rejects a code that already has an account", func() {
		_, err := service.LookupEmployee("EMP001")

		appErr, ok := internal.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeAccountExists))
	})
})

var _ = ginkgo.Describe("BulkUpsertUsers", func() {
	var (
		repo    *mockUserRepo
		service *Service
	)

	ginkgo.BeforeEach(func() {
		repo = &mockUserRepo{users: []*userModel.User{
			{ID: "u-admin", Username: "admin", Password: "x", Role: RoleAdmin, Status: StatusActive},
			{ID: "u-old", Username: "oldtimer", Password: "y", Role: RoleEmployee, Status: StatusActive},
		}}
		directory := &mockEmployeeDirectory{employees: []*employeeModel.Employee{
			{ID: "e1", Code: "EMP001", Name: "Juan Perez"},
		}}
		service = NewService(repo, directory, slog.Default())
	})

	ginkgo.It("creates new accounts with the default password", func() {
		result, err := service.BulkUpsertUsers(&BulkUsersDTO{Users: []BulkUserRow{
			{Username: "nuevo", EmployeeCode: "EMP001"},
		}})

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(result.Created).To(gomega.Equal(1))

		created, _ := repo.GetByUsername("nuevo")
		gomega.Expect(created.Password).To(gomega.Equal("1234"))
		gomega.Expect(created.Role).To(gomega.Equal(RoleEmployee))
		gomega.Expect(*created.EmployeeID).To(gomega.Equal("e1"))
	})

	ginkgo.It("updates existing accounts by username", func() {
		result, err := service.BulkUpsertUsers(&BulkUsersDTO{Users: []BulkUserRow{
			{Username: "OLDTIMER", Password: "rotated"},
		}})

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(result.Updated).To(gomega.Equal(1))

		updated, _ := repo.GetByUsername("oldtimer")
		gomega.Expect(updated.Password).To(gomega.Equal("rotated"))
	})

	ginkgo.It("keeps admins when replacing the whole set", func() {
		result, err := service.BulkUpsertUsers(&BulkUsersDTO{
			Replace: true,
			Users:   []BulkUserRow{{Username: "nuevo"}},
		})

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(result.Created).To(gomega.Equal(1))

		admin, _ := repo.GetByUsername("admin")
		gomega.Expect(admin).NotTo(gomega.BeNil())
		old, _ := repo.GetByUsername("oldtimer")
		gomega.Expect(old).To(gomega.BeNil())
	})
})
