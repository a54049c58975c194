package service

import (
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repository implementations shared by the service test suites

type MockCrewMemberRepository struct {
	mock.Mock
}

func (m *MockCrewMemberRepository) Create(member *models.CrewMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockCrewMemberRepository) GetByID(tenantID, id uuid.UUID) (*models.CrewMember, error) {
	args := m.Called(tenantID, id)
	member, _ := args.Get(0).(*models.CrewMember)
	return member, args.Error(1)
}

func (m *MockCrewMemberRepository) GetByEmail(tenantID uuid.UUID, email string) (*models.CrewMember, error) {
	args := m.Called(tenantID, email)
	member, _ := args.Get(0).(*models.CrewMember)
	return member, args.Error(1)
}

func (m *MockCrewMemberRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.CrewMember, int64, error) {
	args := m.Called(tenantID, limit, offset)
	members, _ := args.Get(0).([]models.CrewMember)
	total, _ := args.Get(1).(int64)
	return members, total, args.Error(2)
}

func (m *MockCrewMemberRepository) GetActive(tenantID uuid.UUID, limit, offset int) ([]models.CrewMember, int64, error) {
	args := m.Called(tenantID, limit, offset)
	members, _ := args.Get(0).([]models.CrewMember)
	total, _ := args.Get(1).(int64)
	return members, total, args.Error(2)
}

func (m *MockCrewMemberRepository) Update(member *models.CrewMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockCrewMemberRepository) Delete(tenantID, id uuid.UUID) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(tenantID, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(tenantID, id)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Customer, int64, error) {
	args := m.Called(tenantID, limit, offset)
	customers, _ := args.Get(0).([]models.Customer)
	total, _ := args.Get(1).(int64)
	return customers, total, args.Error(2)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(tenantID, id uuid.UUID) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(tenantID, id uuid.UUID) (*models.Job, error) {
	args := m.Called(tenantID, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Job, int64, error) {
	args := m.Called(tenantID, limit, offset)
	jobs, _ := args.Get(0).([]models.Job)
	total, _ := args.Get(1).(int64)
	return jobs, total, args.Error(2)
}

func (m *MockJobRepository) GetByCustomerID(tenantID, customerID uuid.UUID, limit, offset int) ([]models.Job, int64, error) {
	args := m.Called(tenantID, customerID, limit, offset)
	jobs, _ := args.Get(0).([]models.Job)
	total, _ := args.Get(1).(int64)
	return jobs, total, args.Error(2)
}

func (m *MockJobRepository) GetByStatus(tenantID uuid.UUID, status models.JobStatus, limit, offset int) ([]models.Job, int64, error) {
	args := m.Called(tenantID, status, limit, offset)
	jobs, _ := args.Get(0).([]models.Job)
	total, _ := args.Get(1).(int64)
	return jobs, total, args.Error(2)
}

func (m *MockJobRepository) Update(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(tenantID, id uuid.UUID) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

type MockDayPlanRepository struct {
	mock.Mock
}

func (m *MockDayPlanRepository) Create(plan *models.DayPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockDayPlanRepository) GetByID(tenantID, id uuid.UUID) (*models.DayPlan, error) {
	args := m.Called(tenantID, id)
	plan, _ := args.Get(0).(*models.DayPlan)
	return plan, args.Error(1)
}

func (m *MockDayPlanRepository) GetWithEvents(tenantID, id uuid.UUID) (*models.DayPlan, error) {
	args := m.Called(tenantID, id)
	plan, _ := args.Get(0).(*models.DayPlan)
	return plan, args.Error(1)
}

func (m *MockDayPlanRepository) GetByCrewAndDate(tenantID, crewMemberID uuid.UUID, date time.Time) (*models.DayPlan, error) {
	args := m.Called(tenantID, crewMemberID, date)
	plan, _ := args.Get(0).(*models.DayPlan)
	return plan, args.Error(1)
}

func (m *MockDayPlanRepository) GetByCrewMemberID(tenantID, crewMemberID uuid.UUID, limit, offset int) ([]models.DayPlan, int64, error) {
	args := m.Called(tenantID, crewMemberID, limit, offset)
	plans, _ := args.Get(0).([]models.DayPlan)
	total, _ := args.Get(1).(int64)
	return plans, total, args.Error(2)
}

func (m *MockDayPlanRepository) Update(plan *models.DayPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockDayPlanRepository) Exists(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockScheduleEventRepository struct {
	mock.Mock
}

func (m *MockScheduleEventRepository) Create(event *models.ScheduleEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockScheduleEventRepository) GetByID(tenantID, id uuid.UUID) (*models.ScheduleEvent, error) {
	args := m.Called(tenantID, id)
	event, _ := args.Get(0).(*models.ScheduleEvent)
	return event, args.Error(1)
}

func (m *MockScheduleEventRepository) GetByDayPlanID(tenantID, dayPlanID uuid.UUID) ([]models.ScheduleEvent, error) {
	args := m.Called(tenantID, dayPlanID)
	events, _ := args.Get(0).([]models.ScheduleEvent)
	return events, args.Error(1)
}

func (m *MockScheduleEventRepository) Update(event *models.ScheduleEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockScheduleEventRepository) Exists(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockKitRepository struct {
	mock.Mock
}

func (m *MockKitRepository) Create(kit *models.Kit) error {
	args := m.Called(kit)
	return args.Error(0)
}

func (m *MockKitRepository) GetByID(tenantID, id uuid.UUID) (*models.Kit, error) {
	args := m.Called(tenantID, id)
	kit, _ := args.Get(0).(*models.Kit)
	return kit, args.Error(1)
}

func (m *MockKitRepository) GetByCode(tenantID uuid.UUID, code string) (*models.Kit, error) {
	args := m.Called(tenantID, code)
	kit, _ := args.Get(0).(*models.Kit)
	return kit, args.Error(1)
}

func (m *MockKitRepository) GetAll(tenantID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Kit, int64, error) {
	args := m.Called(tenantID, activeOnly, limit, offset)
	kits, _ := args.Get(0).([]models.Kit)
	total, _ := args.Get(1).(int64)
	return kits, total, args.Error(2)
}

func (m *MockKitRepository) Update(kit *models.Kit) error {
	args := m.Called(kit)
	return args.Error(0)
}

func (m *MockKitRepository) CreateItem(item *models.KitItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockKitRepository) GetItemByID(tenantID, id uuid.UUID) (*models.KitItem, error) {
	args := m.Called(tenantID, id)
	item, _ := args.Get(0).(*models.KitItem)
	return item, args.Error(1)
}

func (m *MockKitRepository) DeleteItem(tenantID, id uuid.UUID) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

func (m *MockKitRepository) CountItems(tenantID, kitID uuid.UUID) (int64, error) {
	args := m.Called(tenantID, kitID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockKitRepository) CreateVariant(variant *models.KitVariant) error {
	args := m.Called(variant)
	return args.Error(0)
}

func (m *MockKitRepository) GetVariantByID(tenantID, id uuid.UUID) (*models.KitVariant, error) {
	args := m.Called(tenantID, id)
	variant, _ := args.Get(0).(*models.KitVariant)
	return variant, args.Error(1)
}

func (m *MockKitRepository) IsReferenced(tenantID, kitID uuid.UUID) (bool, error) {
	args := m.Called(tenantID, kitID)
	return args.Bool(0), args.Error(1)
}

func (m *MockKitRepository) Delete(tenantID, id uuid.UUID) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

type MockKitAssignmentRepository struct {
	mock.Mock
}

func (m *MockKitAssignmentRepository) Create(assignment *models.KitAssignment) error {
	args := m.Called(assignment)
	return args.Error(0)
}

func (m *MockKitAssignmentRepository) GetByID(tenantID, id uuid.UUID) (*models.KitAssignment, error) {
	args := m.Called(tenantID, id)
	assignment, _ := args.Get(0).(*models.KitAssignment)
	return assignment, args.Error(1)
}

func (m *MockKitAssignmentRepository) GetActiveByEventID(tenantID, eventID uuid.UUID) (*models.KitAssignment, error) {
	args := m.Called(tenantID, eventID)
	assignment, _ := args.Get(0).(*models.KitAssignment)
	return assignment, args.Error(1)
}

func (m *MockKitAssignmentRepository) GetByEventID(tenantID, eventID uuid.UUID) ([]models.KitAssignment, error) {
	args := m.Called(tenantID, eventID)
	assignments, _ := args.Get(0).([]models.KitAssignment)
	return assignments, args.Error(1)
}

func (m *MockKitAssignmentRepository) MarkSuperseded(tenantID, id uuid.UUID, at time.Time) error {
	args := m.Called(tenantID, id, at)
	return args.Error(0)
}

type MockKitOverrideLogRepository struct {
	mock.Mock
}

func (m *MockKitOverrideLogRepository) Create(entry *models.KitOverrideLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockKitOverrideLogRepository) GetByAssignmentID(tenantID, assignmentID uuid.UUID) ([]models.KitOverrideLog, error) {
	args := m.Called(tenantID, assignmentID)
	entries, _ := args.Get(0).([]models.KitOverrideLog)
	return entries, args.Error(1)
}

func (m *MockKitOverrideLogRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.KitOverrideLog, int64, error) {
	args := m.Called(tenantID, limit, offset)
	entries, _ := args.Get(0).([]models.KitOverrideLog)
	total, _ := args.Get(1).(int64)
	return entries, total, args.Error(2)
}

type MockCrewAssignmentRepository struct {
	mock.Mock
}

func (m *MockCrewAssignmentRepository) Create(assignment *models.CrewAssignment) error {
	args := m.Called(assignment)
	return args.Error(0)
}

func (m *MockCrewAssignmentRepository) GetActiveByDayPlanID(tenantID, dayPlanID uuid.UUID) (*models.CrewAssignment, error) {
	args := m.Called(tenantID, dayPlanID)
	assignment, _ := args.Get(0).(*models.CrewAssignment)
	return assignment, args.Error(1)
}

func (m *MockCrewAssignmentRepository) GetActiveByEventID(tenantID, eventID uuid.UUID) (*models.CrewAssignment, error) {
	args := m.Called(tenantID, eventID)
	assignment, _ := args.Get(0).(*models.CrewAssignment)
	return assignment, args.Error(1)
}

func (m *MockCrewAssignmentRepository) Deactivate(tenantID, id uuid.UUID) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}
