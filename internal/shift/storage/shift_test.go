package storage_test

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
	"github.com/frahmantamala/shift-scheduling/internal/shift/storage"
)

func TestShiftStorage(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Shift Storage Suite")
}

var _ = ginkgo.Describe("Shift Repository", func() {
	var (
		db   *gorm.DB
		repo shift.RepositoryAPI
	)

	seed := func(records ...*shiftModel.Shift) {
		for _, rec := range records {
			gomega.Expect(db.Create(rec).Error).NotTo(gomega.HaveOccurred())
		}
	}

	keys := func() map[string]string {
		all, err := repo.GetAll()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		out := make(map[string]string, len(all))
		for _, rec := range all {
			out[rec.EmployeeID+"/"+rec.Date] = rec.Type
		}
		return out
	}

	ginkgo.BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(db.AutoMigrate(&shiftModel.Shift{})).NotTo(gomega.HaveOccurred())

		repo = storage.NewShiftRepository(db)
	})

	ginkgo.Describe("GetInRange", func() {
		ginkgo.It("returns only records inside the inclusive bounds, in date order", func() {
			seed(
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-01-26", Type: "M"},
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-02-26", Type: "T"},
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-01-27", Type: "N"},
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-02-27", Type: "L"},
			)

			got, err := repo.GetInRange(shift.DateRange{Start: "2026-01-27", End: "2026-02-26"})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(got).To(gomega.HaveLen(2))
			gomega.Expect(got[0].Date).To(gomega.Equal("2026-01-27"))
			gomega.Expect(got[1].Date).To(gomega.Equal("2026-02-26"))
		})
	})

	ginkgo.Describe("UpsertBatch", func() {
		ginkgo.It("replaces the type for an existing key and inserts new keys", func() {
			seed(
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-02-10", Type: "M"},
				&shiftModel.Shift{EmployeeID: "e2", Date: "2026-02-10", Type: "T"},
			)

			err := repo.UpsertBatch([]*shiftModel.Shift{
				{EmployeeID: "e1", Date: "2026-02-10", Type: "N"},
				{EmployeeID: "e1", Date: "2026-02-11", Type: "L"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(keys()).To(gomega.Equal(map[string]string{
				"e1/2026-02-10": "N",
				"e1/2026-02-11": "L",
				"e2/2026-02-10": "T",
			}))
		})

		ginkgo.It("is a no-op for an empty batch", func() {
			gomega.Expect(repo.UpsertBatch(nil)).NotTo(gomega.HaveOccurred())
			gomega.Expect(keys()).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("ReplaceInRange", func() {
		ginkgo.BeforeEach(func() {
			seed(
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-01-26", Type: "M"},
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-01-27", Type: "T"},
				&shiftModel.Shift{EmployeeID: "e2", Date: "2026-02-10", Type: "N"},
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-02-26", Type: "L"},
				&shiftModel.Shift{EmployeeID: "e1", Date: "2026-02-27", Type: "M"},
			)
		})

		ginkgo.It("swaps in the new set and leaves records outside the range untouched", func() {
			err := repo.ReplaceInRange(shift.DateRange{Start: "2026-01-27", End: "2026-02-26"}, []*shiftModel.Shift{
				{EmployeeID: "e2", Date: "2026-02-01", Type: "M"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(keys()).To(gomega.Equal(map[string]string{
				"e1/2026-01-26": "M",
				"e2/2026-02-01": "M",
				"e1/2026-02-27": "M",
			}))
		})

		ginkgo.It("clears the range when the replacement set is empty", func() {
			err := repo.ReplaceInRange(shift.DateRange{Start: "2026-01-27", End: "2026-02-26"}, nil)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(keys()).To(gomega.Equal(map[string]string{
				"e1/2026-01-26": "M",
				"e1/2026-02-27": "M",
			}))
		})
	})
})
