package shifttype

import (
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/shift-scheduling/internal"
	shiftTypeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shifttype"
)

func TestShiftType(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "ShiftType Module Suite")
}

type mockShiftTypeRepo struct {
	records []*shiftTypeModel.ShiftType
}

func (m *mockShiftTypeRepo) GetAll() ([]*shiftTypeModel.ShiftType, error) {
	return m.records, nil
}

func (m *mockShiftTypeRepo) ReplaceAll(types []*shiftTypeModel.ShiftType) error {
	m.records = types
	return nil
}

func validationCode(err error) internal.ErrorCode {
	appErr, ok := internal.IsAppError(err)
	if !ok {
		return ""
	}
	return appErr.Code
}

var _ = ginkgo.Describe("ShiftType Service", func() {
	var (
		repo    *mockShiftTypeRepo
		service *Service
	)

	ginkgo.BeforeEach(func() {
		repo = &mockShiftTypeRepo{}
		service = NewService(repo, slog.Default())
	})

	ginkgo.Describe("GetShiftTypes", func() {
		ginkgo.It("falls back to the defaults when nothing is stored", func() {
			types, err := service.GetShiftTypes()

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(types).To(gomega.Equal(Defaults()))
		})

		ginkgo.It("returns the stored catalogue in position order", func() {
			repo.records = []*shiftTypeModel.ShiftType{
				{Code: "D", Label: "Día", Color: "c1", Position: 0},
				{Code: "X", Label: "Extra", Color: "c2", Position: 1},
			}

			types, err := service.GetShiftTypes()

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(types).To(gomega.HaveLen(2))
			gomega.Expect(types[0].Code).To(gomega.Equal("D"))
		})
	})

	ginkgo.Describe("SetShiftTypes", func() {
		ginkgo.It("normalizes codes to trimmed uppercase", func() {
			types, err := service.SetShiftTypes([]ShiftType{
				{Code: " m ", Label: " Mañana "},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(types[0].Code).To(gomega.Equal("M"))
			gomega.Expect(types[0].Label).To(gomega.Equal("Mañana"))
			gomega.Expect(repo.records).To(gomega.HaveLen(1))
		})

		ginkgo.It("rejects an empty catalogue", func() {
			_, err := service.SetShiftTypes(nil)

			gomega.Expect(validationCode(err)).To(gomega.Equal(internal.ErrCodeInvalidShiftTypes))
		})

		ginkgo.It("rejects codes longer than two characters", func() {
			_, err := service.SetShiftTypes([]ShiftType{{Code: "ABC"}})

			gomega.Expect(validationCode(err)).To(gomega.Equal(internal.ErrCodeInvalidShiftTypes))
		})

		ginkgo.It("rejects the reserved terminal code", func() {
			_, err := service.SetShiftTypes([]ShiftType{{Code: "e"}})

			gomega.Expect(validationCode(err)).To(gomega.Equal(internal.ErrCodeReservedShiftCode))
		})

		ginkgo.It("rejects duplicate codes regardless of case", func() {
			_, err := service.SetShiftTypes([]ShiftType{
				{Code: "M"},
				{Code: "m"},
			})

			gomega.Expect(validationCode(err)).To(gomega.Equal(internal.ErrCodeInvalidShiftTypes))
		})

		ginkgo.It("stores positions following the submitted order", func() {
			_, err := service.SetShiftTypes([]ShiftType{
				{Code: "A"},
				{Code: "B"},
				{Code: "C"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.records[0].Position).To(gomega.Equal(0))
			gomega.Expect(repo.records[2].Position).To(gomega.Equal(2))
		})
	})
})
