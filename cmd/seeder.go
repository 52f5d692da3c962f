package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
	shiftTypeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shifttype"
	userModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/user"
	"github.com/frahmantamala/shift-scheduling/internal/employee"
	"github.com/frahmantamala/shift-scheduling/internal/shifttype"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with an admin account, sample employees and the default shift types.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"shifts", "users", "employees", "shift_types"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedAdmin(db)
		seedEmployees(db)
		seedShiftTypes(db)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&userModel.User{}).Where("username = ?", user.AdminUsername).Count(&count)
	if count > 0 {
		fmt.Println("admin user already exists")
		return
	}

	now := time.Now()
	admin := &userModel.User{
		ID:        uuid.NewString(),
		Username:  user.AdminUsername,
		Password:  "password123",
		Role:      user.RoleAdmin,
		Status:    user.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Println("Seeded admin user:", user.AdminUsername)
}

func seedEmployees(db *gorm.DB) {
	samples := []struct {
		Code string
		Name string
	}{
		{"EMP001", "Juan Perez"},
		{"EMP002", "Maria Gomez"},
		{"EMP003", "Carlos Ruiz"},
	}

	now := time.Now()
	for _, sample := range samples {
		var count int64
		db.Model(&employeeModel.Employee{}).Where("code = ?", sample.Code).Count(&count)
		if count > 0 {
			fmt.Println("employee already exists:", sample.Code)
			continue
		}

		emp := &employeeModel.Employee{
			ID:        uuid.NewString(),
			Code:      sample.Code,
			Name:      sample.Name,
			JoinDate:  now.Format("2006-01-02"),
			Role:      employee.DefaultRole,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(emp).Error; err != nil {
			log.Fatalf("failed to seed employee %s: %v", sample.Code, err)
		}
		fmt.Println("Seeded employee:", sample.Code)
	}
}

func seedShiftTypes(db *gorm.DB) {
	var count int64
	db.Model(&shiftTypeModel.ShiftType{}).Count(&count)
	if count > 0 {
		fmt.Println("shift types already configured")
		return
	}

	for i, def := range shifttype.Defaults() {
		record := shifttype.ToDataModel(def, i)
		if err := db.Create(record).Error; err != nil {
			log.Fatalf("failed to seed shift type %s: %v", def.Code, err)
		}
	}
	fmt.Println("Seeded default shift types")
}
