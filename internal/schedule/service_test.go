package schedule

import (
	"errors"
	"log/slog"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
)

type mockEmployeeSource struct {
	employees []*employeeModel.Employee
	err       error
}

func (m *mockEmployeeSource) GetAll() ([]*employeeModel.Employee, error) {
	return m.employees, m.err
}

type mockShiftSource struct {
	shifts    []*shiftModel.Shift
	err       error
	lastRange shift.DateRange
}

func (m *mockShiftSource) GetInRange(r shift.DateRange) ([]*shiftModel.Shift, error) {
	m.lastRange = r
	return m.shifts, m.err
}

var _ = ginkgo.Describe("Grid", func() {
	var (
		employees *mockEmployeeSource
		shifts    *mockShiftSource
		service   *Service
	)

	ginkgo.BeforeEach(func() {
		employees = &mockEmployeeSource{
			employees: []*employeeModel.Employee{
				{ID: "e1", Code: "EMP001", Name: "Juan Perez", Role: "Empleado"},
				{ID: "e2", Code: "EMP002", Name: "Maria Gomez", Role: "Empleado"},
			},
		}
		shifts = &mockShiftSource{
			shifts: []*shiftModel.Shift{
				{EmployeeID: "e1", Date: "2026-01-27", Type: "M"},
				{EmployeeID: "e1", Date: "2026-01-28", Type: "L"},
				{EmployeeID: "e2", Date: "2026-02-01", Type: "N"},
			},
		}
		service = NewService(employees, shifts, slog.Default())
	})

	ginkgo.It("queries shifts over the exact period boundaries", func() {
		_, err := service.Grid(2026, time.February)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(shifts.lastRange).To(gomega.Equal(shift.DateRange{Start: "2026-01-27", End: "2026-02-26"}))
	})

	ginkgo.It("builds one row per employee with their cells and statistics", func() {
		grid, err := service.Grid(2026, time.February)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(grid.Rows).To(gomega.HaveLen(2))
		gomega.Expect(grid.Dates).To(gomega.HaveLen(31))
		gomega.Expect(grid.DisplayMonth).To(gomega.Equal("2026-02"))
		gomega.Expect(grid.PeriodLabel).To(gomega.Equal("Febrero 2026 (27 ene - 26 feb)"))

		first := grid.Rows[0]
		gomega.Expect(first.Code).To(gomega.Equal("EMP001"))
		gomega.Expect(first.Shifts).To(gomega.HaveKeyWithValue("2026-01-27", "M"))
		gomega.Expect(first.Statistics.FreeDays).To(gomega.Equal(1))
		gomega.Expect(first.Statistics.WorkingDays).To(gomega.Equal(30))

		second := grid.Rows[1]
		gomega.Expect(second.Shifts).To(gomega.HaveKeyWithValue("2026-02-01", "N"))
		gomega.Expect(second.Statistics.FreeDays).To(gomega.Equal(0))
	})

	ginkgo.It("leaves rows empty for employees without shifts", func() {
		shifts.shifts = nil

		grid, err := service.Grid(2026, time.February)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(grid.Rows[0].Shifts).To(gomega.BeEmpty())
		gomega.Expect(grid.Rows[0].Statistics.WorkingDays).To(gomega.Equal(31))
	})

	ginkgo.It("propagates storage failures", func() {
		shifts.err = errors.New("db gone")

		_, err := service.Grid(2026, time.February)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
