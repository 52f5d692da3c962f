package bulksync

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/shift-scheduling/internal"
	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	"github.com/frahmantamala/shift-scheduling/internal/employee"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
	"github.com/frahmantamala/shift-scheduling/internal/spreadsheet"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

func TestBulkSync(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "BulkSync Module Suite")
}

type mockEmployeeAPI struct {
	employees []*employee.Employee
	createErr error
	created   []*employee.CreateEmployeeDTO
	renamed   map[string]string
	nextID    int
}

func newMockEmployeeAPI(existing ...*employee.Employee) *mockEmployeeAPI {
	return &mockEmployeeAPI{employees: existing, renamed: map[string]string{}}
}

func (m *mockEmployeeAPI) ListEmployees() ([]*employee.Employee, error) {
	return m.employees, nil
}

func (m *mockEmployeeAPI) CreateEmployee(dto *employee.CreateEmployeeDTO) (*employee.Employee, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, dto)
	m.nextID++
	emp := &employee.Employee{ID: "new-" + dto.Code, Code: dto.Code, Name: dto.Name}
	m.employees = append(m.employees, emp)
	return emp, nil
}

func (m *mockEmployeeAPI) UpdateEmployeeName(id, name string) error {
	for _, emp := range m.employees {
		if emp.ID == id {
			emp.Name = name
			m.renamed[id] = name
			return nil
		}
	}
	return internal.ErrEmployeeNotFound
}

type mockUserAPI struct {
	created []*user.CreateUserDTO
	err     error
}

func (m *mockUserAPI) CreateUser(dto *user.CreateUserDTO) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, dto)
	return &user.User{ID: "u-" + dto.Username, Username: dto.Username}, nil
}

type mockShiftStore struct {
	replaceRange shift.DateRange
	replaced     []*shiftModel.Shift
	replaceCalls int
	err          error
}

func (m *mockShiftStore) GetInRange(r shift.DateRange) ([]*shiftModel.Shift, error) {
	return nil, nil
}

func (m *mockShiftStore) ReplaceInRange(r shift.DateRange, records []*shiftModel.Shift) error {
	if m.err != nil {
		return m.err
	}
	m.replaceCalls++
	m.replaceRange = r
	m.replaced = records
	return nil
}

var _ = ginkgo.Describe("Apply", func() {
	var (
		employees *mockEmployeeAPI
		users     *mockUserAPI
		shifts    *mockShiftStore
		service   *Service
	)

	ginkgo.BeforeEach(func() {
		employees = newMockEmployeeAPI(
			&employee.Employee{ID: "e1", Code: "EMP001", Name: "Juan Perez"},
		)
		users = &mockUserAPI{}
		shifts = &mockShiftStore{}
		service = NewService(employees, users, shifts, slog.Default())
	})

	ginkgo.It("requires confirmation when the upload carries roster changes", func() {
		result := &spreadsheet.ReconciliationResult{
			NewFindings: []spreadsheet.NewEmployeeFinding{{Code: "EMP999", Name: "Pedro"}},
			ShiftsData:  []spreadsheet.ShiftAssignment{{EmployeeCode: "EMP001", Date: "2026-01-27", Type: "M"}},
		}

		_, err := service.Apply(result, false)

		appErr, ok := internal.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeConfirmationRequired))
		gomega.Expect(employees.created).To(gomega.BeEmpty())
		gomega.Expect(shifts.replaceCalls).To(gomega.BeZero())
	})

	ginkgo.It("applies without confirmation when only shift cells changed", func() {
		result := &spreadsheet.ReconciliationResult{
			ShiftsData: []spreadsheet.ShiftAssignment{{EmployeeCode: "EMP001", Date: "2026-01-27", Type: "M"}},
		}

		report, err := service.Apply(result, false)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(report.AppliedShifts).To(gomega.Equal(1))
	})

	ginkgo.It("creates an employee and a login account for each new finding", func() {
		result := &spreadsheet.ReconciliationResult{
			NewFindings: []spreadsheet.NewEmployeeFinding{{Code: "EMP999", Name: "Pedro Nuevo"}},
		}

		report, err := service.Apply(result, true)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(report.CreatedEmployees).To(gomega.Equal(1))

		gomega.Expect(employees.created).To(gomega.HaveLen(1))
		gomega.Expect(employees.created[0].Code).To(gomega.Equal("EMP999"))

		gomega.Expect(users.created).To(gomega.HaveLen(1))
		gomega.Expect(users.created[0].Username).To(gomega.Equal("emp999"))
		gomega.Expect(users.created[0].Password).To(gomega.Equal("EMP999"))
		gomega.Expect(users.created[0].Role).To(gomega.Equal(user.RoleEmployee))
	})

	ginkgo.It("applies confirmed name updates to the roster", func() {
		result := &spreadsheet.ReconciliationResult{
			NameUpdates: []spreadsheet.NameUpdateFinding{
				{Code: "EMP001", ExcelName: "Juan P.", DBName: "Juan Perez"},
			},
		}

		report, err := service.Apply(result, true)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(report.UpdatedNames).To(gomega.Equal(1))
		gomega.Expect(employees.renamed).To(gomega.HaveKeyWithValue("e1", "Juan P."))
	})

	ginkgo.It("aborts before replacing shifts when a roster change fails", func() {
		employees.createErr = errors.New("insert failed")
		result := &spreadsheet.ReconciliationResult{
			NewFindings: []spreadsheet.NewEmployeeFinding{{Code: "EMP999", Name: "Pedro"}},
			ShiftsData:  []spreadsheet.ShiftAssignment{{EmployeeCode: "EMP001", Date: "2026-01-27", Type: "M"}},
		}

		_, err := service.Apply(result, true)

		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(shifts.replaceCalls).To(gomega.BeZero())
	})

	ginkgo.It("replaces exactly the span covered by the upload", func() {
		result := &spreadsheet.ReconciliationResult{
			ShiftsData: []spreadsheet.ShiftAssignment{
				{EmployeeCode: "EMP001", Date: "2026-02-10", Type: "T"},
				{EmployeeCode: "EMP001", Date: "2026-01-27", Type: "M"},
				{EmployeeCode: "EMP001", Date: "2026-02-26", Type: "N"},
			},
		}

		report, err := service.Apply(result, true)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(shifts.replaceRange).To(gomega.Equal(shift.DateRange{Start: "2026-01-27", End: "2026-02-26"}))
		gomega.Expect(shifts.replaced).To(gomega.HaveLen(3))
		gomega.Expect(report.PeriodStart).To(gomega.Equal("2026-01-27"))
		gomega.Expect(report.PeriodEnd).To(gomega.Equal("2026-02-26"))
	})

	ginkgo.It("drops cells for unresolvable codes and reports them", func() {
		result := &spreadsheet.ReconciliationResult{
			ShiftsData: []spreadsheet.ShiftAssignment{
				{EmployeeCode: "EMP001", Date: "2026-01-27", Type: "M"},
				{EmployeeCode: "GHOST", Date: "2026-01-28", Type: "T"},
				{EmployeeCode: "GHOST", Date: "2026-01-29", Type: "N"},
			},
		}

		report, err := service.Apply(result, true)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(report.AppliedShifts).To(gomega.Equal(1))
		gomega.Expect(report.SkippedCount).To(gomega.Equal(2))
		gomega.Expect(report.SkippedCodes).To(gomega.Equal([]string{"GHOST"}))

		gomega.Expect(shifts.replaced).To(gomega.HaveLen(1))
		gomega.Expect(shifts.replaced[0].EmployeeID).To(gomega.Equal("e1"))
	})

	ginkgo.It("resolves cells for employees created in the same apply", func() {
		result := &spreadsheet.ReconciliationResult{
			NewFindings: []spreadsheet.NewEmployeeFinding{{Code: "EMP999", Name: "Pedro"}},
			ShiftsData: []spreadsheet.ShiftAssignment{
				{EmployeeCode: "EMP999", Date: "2026-01-27", Type: "M"},
			},
		}

		report, err := service.Apply(result, true)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(report.SkippedCount).To(gomega.BeZero())
		gomega.Expect(shifts.replaced).To(gomega.HaveLen(1))
		gomega.Expect(shifts.replaced[0].EmployeeID).To(gomega.Equal("new-EMP999"))
	})

	ginkgo.It("skips the shift phase entirely for an upload without cells", func() {
		result := &spreadsheet.ReconciliationResult{
			NewFindings: []spreadsheet.NewEmployeeFinding{{Code: "EMP999", Name: "Pedro"}},
		}

		report, err := service.Apply(result, true)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(shifts.replaceCalls).To(gomega.BeZero())
		gomega.Expect(report.PeriodStart).To(gomega.BeEmpty())
	})
})
