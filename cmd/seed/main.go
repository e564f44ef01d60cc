package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/models"
)

func main() {
	db, err := gorm.Open(sqlite.Open("./data/barakatna.db"), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ClientType{},
		&models.BusinessRule{},
		&models.AuditRecord{},
		&models.Setting{},
		&models.Notification{},
		&models.NotificationProvider{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	fmt.Println("✓ Database migrated successfully")

	seedAdmin(db)
	seedClientTypes(db)
	seedRules(db)
	seedAuditRecords(db)

	fmt.Println("✓ Seed complete")
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		fmt.Println("- Users already present, skipping admin seed")
		return
	}

	admin := models.User{
		UUID:    uuid.NewString(),
		Email:   "admin@barakatna.org",
		Name:    "Administrator",
		Role:    "admin",
		Enabled: true,
	}
	if err := admin.SetPassword("changeme123"); err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}
	fmt.Println("✓ Seeded default admin (admin@barakatna.org / changeme123)")
}

func seedClientTypes(db *gorm.DB) {
	clientTypes := []models.ClientType{
		{Code: "elderly", Name: "Elderly Care", Description: "Home and residential elderly care cases", Enabled: true,
			Config: `{"forms":["intake","assessment"],"visit_frequency_days":14}`},
		{Code: "disability", Name: "Disability Support", Description: "Long-term disability support cases", Enabled: true,
			Config: `{"forms":["intake","equipment"],"visit_frequency_days":30}`},
		{Code: "family", Name: "Family Services", Description: "Family counselling and relief programs", Enabled: true,
			Config: `{"forms":["intake"],"visit_frequency_days":7}`},
	}
	for _, ct := range clientTypes {
		var existing models.ClientType
		if err := db.Where("code = ?", ct.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&ct).Error; err != nil {
			log.Fatal("Failed to seed client type:", err)
		}
	}
	fmt.Println("✓ Seeded client types")
}

func seedRules(db *gorm.DB) {
	rules := []models.BusinessRule{
		{Name: "elderly-age-eligibility", ClientTypeCode: "elderly", Priority: 10, Enabled: true,
			Conditions: `{"field":"age","op":"gte","value":60}`,
			Actions:    `[{"type":"assign_program","program":"home_care"}]`},
		{Name: "disability-equipment-review", ClientTypeCode: "disability", Priority: 5, Enabled: true,
			Conditions: `{"field":"equipment_age_months","op":"gte","value":24}`,
			Actions:    `[{"type":"schedule_visit","reason":"equipment review"}]`},
	}
	for _, rule := range rules {
		var existing models.BusinessRule
		if err := db.Where("name = ?", rule.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&rule).Error; err != nil {
			log.Fatal("Failed to seed rule:", err)
		}
	}
	fmt.Println("✓ Seeded business rules")
}

func seedAuditRecords(db *gorm.DB) {
	var count int64
	db.Model(&models.AuditRecord{}).Count(&count)
	if count > 0 {
		fmt.Println("- Audit records already present, skipping")
		return
	}

	records := []models.AuditRecord{
		{UUID: "seed-1", Timestamp: "2023-10-15T14:30:00", ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "login", Module: "auth", Outcome: "success", SourceAddress: "10.0.0.5"},
		{UUID: "seed-2", Timestamp: "2023-10-15T14:35:00", ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "view", Module: "clients", EntityType: "client", EntityID: "c-100",
			Details: "Opened client record", Outcome: "success", SourceAddress: "10.0.0.5"},
		{UUID: "seed-3", Timestamp: "2023-10-15T14:40:00", ActorID: "u2", ActorName: "Omar Hassan",
			Action: "update", Module: "clients", EntityType: "client", EntityID: "c-100",
			Details: "Updated contact phone", Outcome: "success", SourceAddress: "10.0.0.9",
			RelatedRecordIDs: []string{"seed-2"},
			CustodyChain: []models.CustodyEntry{
				{Timestamp: "2023-10-15T14:39:00", ActorName: "Omar Hassan", Action: "checkout", Details: "Opened for editing"},
				{Timestamp: "2023-10-15T14:40:00", ActorName: "Omar Hassan", Action: "commit", Details: "Saved changes"},
			}},
		{UUID: "seed-4", Timestamp: "2023-10-15T15:00:00", ActorID: "u3", ActorName: "Layla Ibrahim",
			Action: "create", Module: "assessments", EntityType: "assessment", EntityID: "a-7",
			Details: "New home assessment", Outcome: "success", SourceAddress: "10.0.0.12"},
		{UUID: "seed-5", Timestamp: "2023-10-15T15:20:00", ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "export", Module: "reports", Outcome: "success", SourceAddress: "10.0.0.5"},
		{UUID: "seed-6", Timestamp: "2023-10-15T15:45:00", ActorID: "u2", ActorName: "Omar Hassan",
			Action: "login", Module: "auth", Outcome: "failure", Severity: "medium",
			Details: "Wrong password", SourceAddress: "192.168.1.3"},
		{UUID: "seed-7", Timestamp: "2023-10-15T16:00:00", ActorID: "u2", ActorName: "Omar Hassan",
			Action: "login", Module: "auth", Outcome: "success", SourceAddress: "192.168.1.3",
			RelatedRecordIDs: []string{"seed-6"}},
		{UUID: "seed-8", Timestamp: "2023-10-15T16:30:00", ActorID: "u2", ActorName: "Omar Hassan",
			Action: "delete", Module: "clients", EntityType: "client", EntityID: "c-42",
			Details: "Attempted deletion of archived case", Outcome: "failure", Severity: "critical",
			SourceAddress: "192.168.1.3"},
		{UUID: "seed-9", Timestamp: "2023-10-15T16:45:00", ActorID: "u4", ActorName: "System Scheduler",
			Action: "backup", Module: "system", Outcome: "success", Severity: "low"},
		{UUID: "seed-10", Timestamp: "2023-10-15T17:00:00", ActorID: "u3", ActorName: "Layla Ibrahim",
			Action: "update", Module: "assessments", EntityType: "assessment", EntityID: "a-7",
			Details: "Completed assessment", Outcome: "success", SourceAddress: "10.0.0.12"},
	}
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			log.Fatal("Failed to seed audit record:", err)
		}
	}
	fmt.Println("✓ Seeded audit records")
}
