package storage_test

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
	"github.com/frahmantamala/shift-scheduling/internal/employee"
	"github.com/frahmantamala/shift-scheduling/internal/employee/storage"
)

func TestEmployeeStorage(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Storage Suite")
}

var _ = ginkgo.Describe("Employee Repository", func() {
	var (
		db   *gorm.DB
		repo employee.RepositoryAPI
	)

	ginkgo.BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(db.AutoMigrate(&employeeModel.Employee{})).NotTo(gomega.HaveOccurred())
		// same case-folded uniqueness the migration enforces
		err = db.Exec("CREATE UNIQUE INDEX idx_employees_code_nocase ON employees (LOWER(code))").Error
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo = storage.NewEmployeeRepository(db)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("rejects a duplicate code that differs only in case", func() {
			err := repo.Create(&employeeModel.Employee{ID: "e1", Code: "EMP001", Name: "Juan Perez"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = repo.Create(&employeeModel.Employee{ID: "e2", Code: "emp001", Name: "Otro"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("GetByCode", func() {
		ginkgo.It("matches regardless of case and returns nil for an unknown code", func() {
			err := repo.Create(&employeeModel.Employee{ID: "e1", Code: "EMP001", Name: "Juan Perez"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			emp, err := repo.GetByCode("emp001")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(emp).NotTo(gomega.BeNil())
			gomega.Expect(emp.ID).To(gomega.Equal("e1"))

			emp, err = repo.GetByCode("EMP999")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(emp).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("UpdateName", func() {
		ginkgo.It("changes the name and nothing else", func() {
			err := repo.Create(&employeeModel.Employee{ID: "e1", Code: "EMP001", Name: "Juan Perez", Role: "Empleado"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(repo.UpdateName("e1", "Juan P.")).NotTo(gomega.HaveOccurred())

			emp, err := repo.GetByID("e1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(emp.Name).To(gomega.Equal("Juan P."))
			gomega.Expect(emp.Code).To(gomega.Equal("EMP001"))
			gomega.Expect(emp.Role).To(gomega.Equal("Empleado"))
		})
	})
})
