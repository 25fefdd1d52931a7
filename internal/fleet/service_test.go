package fleet

import (
	"context"
	"testing"

	"github.com/hireflow/hireflow/internal/db"
	"github.com/hireflow/hireflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNormalizeNIC(t *testing.T) {
	assert.Equal(t, "912345678V", NormalizeNIC("  912345678v "))
	assert.Equal(t, "200012301234", NormalizeNIC("200012301234"))
	assert.Equal(t, "", NormalizeNIC("   "))
}

func TestService_CreateOwner(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("FindOwnerByNIC", mock.Anything, "912345678V").Return(nil, db.ErrNotFound)
	owners.On("InsertOwner", mock.Anything, mock.MatchedBy(func(o models.VehicleOwner) bool {
		return o.NICNumber == "912345678V" &&
			o.SystemStatus == models.OwnerActive &&
			o.WhatsappNumber == "0771234567" && // falls back to phone
			o.CreatedByOrganizationID == "org-1"
	})).Return(&models.VehicleOwner{NICNumber: "912345678V", FullName: "Sunil Rathnayake"}, nil)
	owners.On("InsertCompanyOwner", mock.Anything, mock.MatchedBy(func(m models.CompanyOwner) bool {
		return m.OrganizationID == "org-1" && m.OwnerNIC == "912345678V" && m.Status == models.OwnerActive
	})).Return(&models.CompanyOwner{OrganizationID: "org-1", OwnerNIC: "912345678V"}, nil)

	owner, membership, err := service.CreateOwner(context.Background(), testClaims(), CreateOwnerInput{
		NICNumber:   "912345678v",
		FullName:    "Sunil Rathnayake",
		PhoneNumber: "0771234567",
	})

	assert.NoError(t, err)
	assert.Equal(t, "912345678V", owner.NICNumber)
	assert.Equal(t, "org-1", membership.OrganizationID)
	owners.AssertExpectations(t)
}

func TestService_CreateOwner_DuplicateNIC(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("FindOwnerByNIC", mock.Anything, "912345678V").Return(&models.VehicleOwner{NICNumber: "912345678V"}, nil)

	_, _, err := service.CreateOwner(context.Background(), testClaims(), CreateOwnerInput{
		NICNumber:   "912345678V",
		FullName:    "Sunil Rathnayake",
		PhoneNumber: "0771234567",
	})

	assert.Equal(t, ErrOwnerExists, err)
	owners.AssertNotCalled(t, "InsertOwner", mock.Anything, mock.Anything)
}

func TestService_CreateOwner_MissingFields(t *testing.T) {
	service := newTestService(new(MockVehicleCollection), new(MockOwnerCollection), new(MockDriverCollection), new(MockHireCollection))

	_, _, err := service.CreateOwner(context.Background(), testClaims(), CreateOwnerInput{
		NICNumber: "912345678V",
	})

	assert.Equal(t, ErrValidation, err)
}

func TestService_AddCompanyOwner(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owner := &models.VehicleOwner{NICNumber: "912345678V", FullName: "Sunil Rathnayake"}
	owners.On("FindOwnerByNIC", mock.Anything, "912345678V").Return(owner, nil)
	owners.On("FindCompanyOwner", mock.Anything, "org-1", "912345678V").Return(nil, db.ErrNotFound)
	owners.On("InsertCompanyOwner", mock.Anything, mock.Anything).
		Return(&models.CompanyOwner{OrganizationID: "org-1", OwnerNIC: "912345678V"}, nil)

	membership, found, err := service.AddCompanyOwner(context.Background(), testClaims(), "912345678v")

	assert.NoError(t, err)
	assert.Equal(t, "912345678V", membership.OwnerNIC)
	assert.Equal(t, owner, found)
	owners.AssertExpectations(t)
}

func TestService_AddCompanyOwner_AlreadyMember(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("FindOwnerByNIC", mock.Anything, "912345678V").Return(&models.VehicleOwner{NICNumber: "912345678V"}, nil)
	owners.On("FindCompanyOwner", mock.Anything, "org-1", "912345678V").
		Return(&models.CompanyOwner{OrganizationID: "org-1", OwnerNIC: "912345678V"}, nil)

	_, _, err := service.AddCompanyOwner(context.Background(), testClaims(), "912345678V")

	assert.Equal(t, ErrMembershipExists, err)
}

func TestService_AddCompanyOwner_UnknownNIC(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("FindOwnerByNIC", mock.Anything, "999999999V").Return(nil, db.ErrNotFound)

	_, _, err := service.AddCompanyOwner(context.Background(), testClaims(), "999999999V")

	assert.Equal(t, ErrNotFound, err)
}

func TestService_SetCompanyOwnerStatus(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("UpdateCompanyOwnerStatus", mock.Anything, "membership-1", "org-1", models.OwnerInactive).
		Return(&models.CompanyOwner{Status: models.OwnerInactive}, nil)

	membership, err := service.SetCompanyOwnerStatus(context.Background(), testClaims(), "membership-1", models.OwnerInactive)

	assert.NoError(t, err)
	assert.Equal(t, models.OwnerInactive, membership.Status)

	_, err = service.SetCompanyOwnerStatus(context.Background(), testClaims(), "membership-1", "suspended")
	assert.Equal(t, ErrValidation, err)
}

func TestService_ListCompanyOwners(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("FindCompanyOwners", mock.Anything, "org-1").Return([]models.CompanyOwner{
		{OrganizationID: "org-1", OwnerNIC: "912345678V"},
		{OrganizationID: "org-1", OwnerNIC: "888888888V"},
	}, nil)
	owners.On("FindOwnerByNIC", mock.Anything, "912345678V").
		Return(&models.VehicleOwner{NICNumber: "912345678V", FullName: "Sunil Rathnayake"}, nil)
	// Orphaned membership: global record gone, view keeps a nil owner.
	owners.On("FindOwnerByNIC", mock.Anything, "888888888V").Return(nil, db.ErrNotFound)

	views, err := service.ListCompanyOwners(context.Background(), testClaims())

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "Sunil Rathnayake", views[0].Owner.FullName)
	assert.Nil(t, views[1].Owner)
}

func TestService_CreateDriver(t *testing.T) {
	owners := new(MockOwnerCollection)
	drivers := new(MockDriverCollection)
	service := newTestService(new(MockVehicleCollection), owners, drivers, new(MockHireCollection))

	owners.On("FindCompanyOwner", mock.Anything, "org-1", "912345678V").
		Return(&models.CompanyOwner{OrganizationID: "org-1", OwnerNIC: "912345678V"}, nil)
	drivers.On("InsertDriver", mock.Anything, mock.MatchedBy(func(d models.Driver) bool {
		return d.NICNumber == "951234567V" &&
			d.OwnerNIC == "912345678V" &&
			d.Status == models.OwnerActive &&
			d.OrganizationID == "org-1"
	})).Return(&models.Driver{NICNumber: "951234567V"}, nil)

	driver, err := service.CreateDriver(context.Background(), testClaims(), CreateDriverInput{
		NICNumber:   "951234567v",
		OwnerNIC:    "912345678v",
		FullName:    "Chaminda Kumara",
		PhoneNumber: "0719876543",
	})

	assert.NoError(t, err)
	assert.Equal(t, "951234567V", driver.NICNumber)
	drivers.AssertExpectations(t)
}

func TestService_CreateDriver_OwnerNotInCompany(t *testing.T) {
	owners := new(MockOwnerCollection)
	service := newTestService(new(MockVehicleCollection), owners, new(MockDriverCollection), new(MockHireCollection))

	owners.On("FindCompanyOwner", mock.Anything, "org-1", "912345678V").Return(nil, db.ErrNotFound)

	_, err := service.CreateDriver(context.Background(), testClaims(), CreateDriverInput{
		NICNumber:   "951234567V",
		OwnerNIC:    "912345678V",
		FullName:    "Chaminda Kumara",
		PhoneNumber: "0719876543",
	})

	assert.Equal(t, ErrNotFound, err)
}

func TestService_Reset(t *testing.T) {
	vehicles := new(MockVehicleCollection)
	hires := new(MockHireCollection)
	service := newTestService(vehicles, new(MockOwnerCollection), new(MockDriverCollection), hires)

	hires.On("DeleteHiresByOrganization", mock.Anything, "org-1").Return(int64(42), nil)
	vehicles.On("DeleteVehiclesByOrganization", mock.Anything, "org-1").Return(int64(7), nil)

	result, err := service.Reset(context.Background(), "org-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.DeletedHires)
	assert.Equal(t, int64(7), result.DeletedVehicles)
	assert.Equal(t, "org-1", result.OrganizationID)
}
