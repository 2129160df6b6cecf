package models_test

import (
	"testing"

	"food4u-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestExtraDataApply(t *testing.T) {
	t.Run("driver requires vehicle", func(t *testing.T) {
		_, err := models.ExtraData{}.Apply(models.Profiles{}, []models.UserRole{models.RoleDriver})

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "extraData.vehicle", verr.Field)
	})

	t.Run("restaurant accepts zero coordinates", func(t *testing.T) {
		p, err := models.ExtraData{
			RestaurantName: ptr("BK"),
			Lat:            ptr(0.0),
			Lng:            ptr(0.0),
		}.Apply(models.Profiles{}, []models.UserRole{models.RoleRestaurant})

		require.NoError(t, err)
		require.NotNil(t, p.Restaurant)
		assert.Equal(t, 0.0, p.Restaurant.Lat)
		assert.Equal(t, 0.0, p.Restaurant.Lng)
	})

	t.Run("restaurant without lng fails", func(t *testing.T) {
		_, err := models.ExtraData{
			RestaurantName: ptr("BK"),
			Lat:            ptr(40.0),
		}.Apply(models.Profiles{}, []models.UserRole{models.RoleRestaurant})

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "extraData.lng", verr.Field)
	})

	t.Run("held profile satisfies requirements", func(t *testing.T) {
		base := models.Profiles{Driver: &models.DriverProfile{Vehicle: "Civic"}}
		p, err := models.ExtraData{
			RestaurantName: ptr("BK"),
			Lat:            ptr(40.0),
			Lng:            ptr(-73.0),
		}.Apply(base, []models.UserRole{models.RoleDriver, models.RoleRestaurant})

		require.NoError(t, err)
		assert.Equal(t, "Civic", p.Driver.Vehicle)
		assert.Equal(t, "BK", p.Restaurant.RestaurantName)
	})

	t.Run("present keys overwrite held ones", func(t *testing.T) {
		base := models.Profiles{Restaurant: &models.RestaurantProfile{RestaurantName: "BK", Lat: 40, Lng: -73}}
		p, err := models.ExtraData{Lat: ptr(0.0)}.Apply(base, []models.UserRole{models.RoleRestaurant})

		require.NoError(t, err)
		assert.Equal(t, models.RestaurantProfile{RestaurantName: "BK", Lat: 0, Lng: -73}, *p.Restaurant)
		assert.Equal(t, 40.0, base.Restaurant.Lat, "base must not be modified")
	})

	t.Run("customer needs nothing", func(t *testing.T) {
		p, err := models.ExtraData{}.Apply(models.Profiles{}, []models.UserRole{models.RoleCustomer})
		require.NoError(t, err)
		assert.Nil(t, p.Driver)
		assert.Nil(t, p.Restaurant)
	})
}

func TestProfilesMerge(t *testing.T) {
	base := models.Profiles{Driver: &models.DriverProfile{Vehicle: "Civic"}}

	merged := base.Merge(models.Profiles{
		Restaurant: &models.RestaurantProfile{RestaurantName: "BK", Lat: 40, Lng: -73},
	})

	assert.Equal(t, models.ExtraData{
		Vehicle:        ptr("Civic"),
		RestaurantName: ptr("BK"),
		Lat:            ptr(40.0),
		Lng:            ptr(-73.0),
	}, merged.ExtraData())

	overwritten := merged.Merge(models.Profiles{Driver: &models.DriverProfile{Vehicle: "Prius"}})
	assert.Equal(t, "Prius", overwritten.Driver.Vehicle)
	assert.Equal(t, "BK", overwritten.Restaurant.RestaurantName)
	assert.Equal(t, "Civic", merged.Driver.Vehicle, "merge must not alias the receiver")
}

func TestAccountRoles(t *testing.T) {
	acc := &models.Account{Roles: []models.UserRole{models.RoleDriver}}

	assert.True(t, acc.HasRole(models.RoleDriver))
	assert.False(t, acc.HasRole(models.RoleRestaurant))
	assert.Equal(t,
		[]models.UserRole{models.RoleRestaurant},
		acc.MissingRoles([]models.UserRole{models.RoleDriver, models.RoleRestaurant, models.RoleRestaurant}),
	)
	assert.Empty(t, acc.MissingRoles([]models.UserRole{models.RoleDriver}))
	assert.Equal(t,
		[]models.UserRole{models.RoleDriver, models.RoleCustomer},
		models.UnionRoles(acc.Roles, []models.UserRole{models.RoleCustomer, models.RoleDriver}),
	)
	assert.True(t, models.RoleCustomer.IsValid())
	assert.False(t, models.UserRole("admin").IsValid())
}
