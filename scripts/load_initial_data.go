package main

import (
	"field-ops-backend/internal/config"
	"field-ops-backend/internal/database"
	"field-ops-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name     string `yaml:"name"`
	Domain   string `yaml:"domain"`
	IsActive bool   `yaml:"is_active"`
}

type CrewMemberData struct {
	TenantName  string `yaml:"tenant_name"`
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	Role        string `yaml:"role"`
	IsActive    bool   `yaml:"is_active"`
}

type CustomerData struct {
	TenantName  string `yaml:"tenant_name"`
	Name        string `yaml:"name"`
	Email       string `yaml:"email,omitempty"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	Address     string `yaml:"address,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

type JobData struct {
	TenantName               string `yaml:"tenant_name"`
	CustomerName             string `yaml:"customer_name"`
	Title                    string `yaml:"title"`
	Description              string `yaml:"description,omitempty"`
	Status                   string `yaml:"status,omitempty"`
	Priority                 string `yaml:"priority,omitempty"`
	ScheduledDate            string `yaml:"scheduled_date,omitempty"`
	EstimatedDurationMinutes int    `yaml:"estimated_duration_minutes"`
	Address                  string `yaml:"address,omitempty"`
}

type KitData struct {
	TenantName string           `yaml:"tenant_name"`
	Code       string           `yaml:"code"`
	Name       string           `yaml:"name"`
	IsActive   bool             `yaml:"is_active"`
	Items      []KitItemData    `yaml:"items"`
	Variants   []KitVariantData `yaml:"variants,omitempty"`
}

type KitItemData struct {
	ItemName string  `yaml:"item_name"`
	ItemType string  `yaml:"item_type"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
	Required bool    `yaml:"required"`
}

type KitVariantData struct {
	Name         string        `yaml:"name"`
	ConditionTag string        `yaml:"condition_tag,omitempty"`
	Items        []KitItemData `yaml:"items"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type CrewMembersFile struct {
	CrewMembers []CrewMemberData `yaml:"crew_members"`
}

type CustomersFile struct {
	Customers []CustomerData `yaml:"customers"`
}

type JobsFile struct {
	Jobs []JobData `yaml:"jobs"`
}

type KitsFile struct {
	Kits []KitData `yaml:"kits"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	crewMembers, err := loadCrewMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load crew members: %w", err)
	}

	customers, err := loadCustomers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	jobs, err := loadJobs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	kits, err := loadKits(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load kits: %w", err)
	}

	// Create tenants first; everything else hangs off them
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("📋 Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create crew members
	crewCreated := 0
	for _, crewData := range crewMembers {
		_, created, err := createCrewMember(db, crewData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create crew member %s: %w", crewData.Email, err)
		}
		if created {
			crewCreated++
		}
	}
	log.Printf("📋 Crew members: %d created, %d total", crewCreated, len(crewMembers))

	// Create customers
	customerMap := make(map[string]*models.Customer)
	customerCreated := 0
	for _, customerData := range customers {
		customer, created, err := createCustomer(db, customerData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create customer %s: %w", customerData.Name, err)
		}
		customerMap[customerData.TenantName+"/"+customerData.Name] = customer
		if created {
			customerCreated++
		}
	}
	log.Printf("📋 Customers: %d created, %d total", customerCreated, len(customers))

	// Create jobs
	jobCreated := 0
	for _, jobData := range jobs {
		_, created, err := createJob(db, jobData, tenantMap, customerMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create job %s: %v", jobData.Title, err)
			continue // Continue with other jobs
		}
		if created {
			jobCreated++
		}
	}
	log.Printf("📋 Jobs: %d created, %d total", jobCreated, len(jobs))

	// Create kits with their base items and variants
	kitCreated := 0
	for _, kitData := range kits {
		_, created, err := createKit(db, kitData, tenantMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create kit %s: %v", kitData.Code, err)
			continue // Continue with other kits
		}
		if created {
			kitCreated++
		}
	}
	log.Printf("📋 Kits: %d created, %d total", kitCreated, len(kits))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadCrewMembers(dataDir string) ([]CrewMemberData, error) {
	var allCrewMembers []CrewMemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "crew_members") {
			var file CrewMembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCrewMembers = append(allCrewMembers, file.CrewMembers...)
		}
		return nil
	})

	return allCrewMembers, err
}

func loadCustomers(dataDir string) ([]CustomerData, error) {
	var allCustomers []CustomerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "customers") {
			var file CustomersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCustomers = append(allCustomers, file.Customers...)
		}
		return nil
	})

	return allCustomers, err
}

func loadJobs(dataDir string) ([]JobData, error) {
	var allJobs []JobData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "jobs") {
			var file JobsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allJobs = append(allJobs, file.Jobs...)
		}
		return nil
	})

	return allJobs, err
}

func loadKits(dataDir string) ([]KitData, error) {
	var allKits []KitData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "kits") {
			var file KitsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allKits = append(allKits, file.Kits...)
		}
		return nil
	})

	return allKits, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("name = ?", tenantData.Name).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tenant = models.Tenant{
				Name:     tenantData.Name,
				Domain:   tenantData.Domain,
				IsActive: tenantData.IsActive,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tenant: %w", err)
		}
	}

	return &tenant, false, nil // created = false (existing)
}

func createCrewMember(db *gorm.DB, crewData CrewMemberData, tenantMap map[string]*models.Tenant) (*models.CrewMember, bool, error) {
	tenant := tenantMap[crewData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for crew member %s", crewData.TenantName, crewData.Email)
	}

	var crewMember models.CrewMember
	if err := db.Where("tenant_id = ? AND email = ?", tenant.ID, crewData.Email).First(&crewMember).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.CrewRoleTechnician
			if crewData.Role != "" {
				role = models.CrewRole(crewData.Role)
			}

			crewMember = models.CrewMember{
				TenantModel: models.TenantModel{TenantID: tenant.ID},
				FullName:    crewData.FullName,
				Email:       crewData.Email,
				PhoneNumber: crewData.PhoneNumber,
				Role:        role,
				IsActive:    crewData.IsActive,
			}

			if err := db.Create(&crewMember).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create crew member: %w", err)
			}
			return &crewMember, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query crew member: %w", err)
		}
	}

	return &crewMember, false, nil // created = false (existing)
}

func createCustomer(db *gorm.DB, customerData CustomerData, tenantMap map[string]*models.Tenant) (*models.Customer, bool, error) {
	tenant := tenantMap[customerData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for customer %s", customerData.TenantName, customerData.Name)
	}

	var customer models.Customer
	if err := db.Where("tenant_id = ? AND name = ?", tenant.ID, customerData.Name).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := "active"
			if customerData.Status != "" {
				status = customerData.Status
			}

			customer = models.Customer{
				TenantModel: models.TenantModel{TenantID: tenant.ID},
				Name:        customerData.Name,
				Email:       customerData.Email,
				PhoneNumber: customerData.PhoneNumber,
				Address:     customerData.Address,
				Status:      status,
			}

			if err := db.Create(&customer).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create customer: %w", err)
			}
			return &customer, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query customer: %w", err)
		}
	}

	return &customer, false, nil // created = false (existing)
}

func createJob(db *gorm.DB, jobData JobData, tenantMap map[string]*models.Tenant, customerMap map[string]*models.Customer) (*models.Job, bool, error) {
	tenant := tenantMap[jobData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for job %s", jobData.TenantName, jobData.Title)
	}

	customer := customerMap[jobData.TenantName+"/"+jobData.CustomerName]
	if customer == nil {
		return nil, false, fmt.Errorf("customer %s not found for job %s", jobData.CustomerName, jobData.Title)
	}

	var job models.Job
	if err := db.Where("tenant_id = ? AND customer_id = ? AND title = ?", tenant.ID, customer.ID, jobData.Title).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.JobStatusScheduled
			if jobData.Status != "" {
				status = models.JobStatus(jobData.Status)
			}

			priority := models.JobPriorityMedium
			if jobData.Priority != "" {
				priority = models.JobPriority(jobData.Priority)
			}

			var scheduledDate *time.Time
			if jobData.ScheduledDate != "" {
				parsed, err := time.Parse("2006-01-02", jobData.ScheduledDate)
				if err != nil {
					return nil, false, fmt.Errorf("invalid scheduled_date %q: %w", jobData.ScheduledDate, err)
				}
				scheduledDate = &parsed
			}

			estimated := jobData.EstimatedDurationMinutes
			if estimated == 0 {
				estimated = 60
			}

			job = models.Job{
				TenantModel:              models.TenantModel{TenantID: tenant.ID},
				CustomerID:               customer.ID,
				Title:                    jobData.Title,
				Description:              jobData.Description,
				Status:                   status,
				Priority:                 priority,
				ScheduledDate:            scheduledDate,
				EstimatedDurationMinutes: estimated,
				Address:                  jobData.Address,
				CreatedBy:                "initial-data-loader",
			}

			if err := db.Create(&job).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create job: %w", err)
			}
			return &job, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query job: %w", err)
		}
	}

	return &job, false, nil // created = false (existing)
}

func createKit(db *gorm.DB, kitData KitData, tenantMap map[string]*models.Tenant) (*models.Kit, bool, error) {
	tenant := tenantMap[kitData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for kit %s", kitData.TenantName, kitData.Code)
	}

	if len(kitData.Items) == 0 {
		return nil, false, fmt.Errorf("kit %s has no base items", kitData.Code)
	}

	var kit models.Kit
	if err := db.Where("tenant_id = ? AND code = ?", tenant.ID, kitData.Code).First(&kit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			kit = models.Kit{
				TenantID: tenant.ID,
				Code:     kitData.Code,
				Name:     kitData.Name,
				IsActive: kitData.IsActive,
			}

			if err := db.Create(&kit).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create kit: %w", err)
			}

			// Base item set (nil VariantID)
			for _, itemData := range kitData.Items {
				item := models.KitItem{
					TenantModel: models.TenantModel{TenantID: tenant.ID},
					KitID:       kit.ID,
					ItemName:    itemData.ItemName,
					ItemType:    models.ItemType(itemData.ItemType),
					Quantity:    itemData.Quantity,
					Unit:        itemData.Unit,
					Required:    itemData.Required,
				}
				if err := db.Create(&item).Error; err != nil {
					return nil, false, fmt.Errorf("failed to create kit item %s: %w", itemData.ItemName, err)
				}
			}

			// Variants with their alternate item sets
			for _, variantData := range kitData.Variants {
				variant := models.KitVariant{
					TenantModel:  models.TenantModel{TenantID: tenant.ID},
					KitID:        kit.ID,
					Name:         variantData.Name,
					ConditionTag: variantData.ConditionTag,
				}
				if err := db.Create(&variant).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create kit variant %s: %v", variantData.Name, err)
					continue
				}

				variantID := variant.ID
				for _, itemData := range variantData.Items {
					item := models.KitItem{
						TenantModel: models.TenantModel{TenantID: tenant.ID},
						KitID:       kit.ID,
						VariantID:   &variantID,
						ItemName:    itemData.ItemName,
						ItemType:    models.ItemType(itemData.ItemType),
						Quantity:    itemData.Quantity,
						Unit:        itemData.Unit,
						Required:    itemData.Required,
					}
					if err := db.Create(&item).Error; err != nil {
						log.Printf("⚠️  Warning: failed to create variant item %s: %v", itemData.ItemName, err)
					}
				}
			}

			return &kit, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query kit: %w", err)
		}
	}

	return &kit, false, nil // created = false (existing)
}
