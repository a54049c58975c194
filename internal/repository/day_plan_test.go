//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"field-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DayPlanRepositoryTestSuite tests the DayPlanRepository
type DayPlanRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DayPlanRepository
	eventRepo     *ScheduleEventRepository
	crewRepo      *CrewMemberRepository
	tenantRepo    *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *DayPlanRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewDayPlanRepository(suite.baseTestSuite.DB)
	suite.eventRepo = NewScheduleEventRepository(suite.baseTestSuite.DB)
	suite.crewRepo = NewCrewMemberRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *DayPlanRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DayPlanRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DayPlanRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createFixtures persists a tenant and one crew member and returns their ids
func (suite *DayPlanRepositoryTestSuite) createFixtures() (uuid.UUID, uuid.UUID) {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.tenantRepo.Create(tenant))

	member := suite.factories.CrewMember.Create(tenant.ID)
	suite.NoError(suite.crewRepo.Create(member))

	return tenant.ID, member.ID
}

func (suite *DayPlanRepositoryTestSuite) TestCreate() {
	tenantID, crewMemberID := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	err := suite.repo.Create(plan)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, plan.ID)
	suite.NotZero(plan.CreatedAt)
}

func (suite *DayPlanRepositoryTestSuite) TestCreateDuplicateCrewAndDate() {
	tenantID, crewMemberID := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan1 := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan1))

	// Second plan for the same crew member and date must violate the
	// composite unique index
	plan2 := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	err := suite.repo.Create(plan2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *DayPlanRepositoryTestSuite) TestSameCrewAndDateDifferentTenant() {
	tenantID, crewMemberID := suite.createFixtures()
	otherTenantID, _ := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan1 := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan1))

	// Same crew member id under another tenant is a distinct key
	plan2 := suite.factories.DayPlan.Create(otherTenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan2))
}

func (suite *DayPlanRepositoryTestSuite) TestGetByID() {
	tenantID, crewMemberID := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan))

	retrieved, err := suite.repo.GetByID(tenantID, plan.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(plan.ID, retrieved.ID)
	suite.Equal(crewMemberID, retrieved.CrewMemberID)
}

func (suite *DayPlanRepositoryTestSuite) TestGetByIDNotFound() {
	tenantID, _ := suite.createFixtures()

	plan, err := suite.repo.GetByID(tenantID, uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(plan)
}

func (suite *DayPlanRepositoryTestSuite) TestTenantIsolation() {
	tenantID, crewMemberID := suite.createFixtures()
	otherTenantID, _ := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan))

	// Another tenant cannot see the row at all
	retrieved, err := suite.repo.GetByID(otherTenantID, plan.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

func (suite *DayPlanRepositoryTestSuite) TestGetByCrewAndDate() {
	tenantID, crewMemberID := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan))

	retrieved, err := suite.repo.GetByCrewAndDate(tenantID, crewMemberID, planDate)

	suite.NoError(err)
	suite.Equal(plan.ID, retrieved.ID)
}

func (suite *DayPlanRepositoryTestSuite) TestGetWithEventsOrdered() {
	tenantID, crewMemberID := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan))

	// Insert out of sequence order on purpose
	start := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	event3 := suite.factories.ScheduleEvent.Create(tenantID, plan.ID, 3, start.Add(2*time.Hour), 60)
	event1 := suite.factories.ScheduleEvent.Create(tenantID, plan.ID, 1, start, 60)
	event2 := suite.factories.ScheduleEvent.Create(tenantID, plan.ID, 2, start.Add(time.Hour), 60)
	suite.NoError(suite.eventRepo.Create(event3))
	suite.NoError(suite.eventRepo.Create(event1))
	suite.NoError(suite.eventRepo.Create(event2))

	retrieved, err := suite.repo.GetWithEvents(tenantID, plan.ID)

	suite.NoError(err)
	suite.Len(retrieved.Events, 3)
	suite.Equal(1, retrieved.Events[0].SequenceOrder)
	suite.Equal(2, retrieved.Events[1].SequenceOrder)
	suite.Equal(3, retrieved.Events[2].SequenceOrder)
}

func (suite *DayPlanRepositoryTestSuite) TestUpdate() {
	tenantID, crewMemberID := suite.createFixtures()
	planDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	plan := suite.factories.DayPlan.Create(tenantID, crewMemberID, planDate)
	suite.NoError(suite.repo.Create(plan))

	plan.TotalDurationMinutes = 180
	suite.NoError(suite.repo.Update(plan))

	retrieved, err := suite.repo.GetByID(tenantID, plan.ID)
	suite.NoError(err)
	suite.Equal(180, retrieved.TotalDurationMinutes)
}

func TestDayPlanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DayPlanRepositoryTestSuite))
}
