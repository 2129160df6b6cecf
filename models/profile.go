package models

// DriverProfile is the extra data carried by the driver role
type DriverProfile struct {
	Vehicle string `json:"vehicle"`
}

// RestaurantProfile is the extra data carried by the restaurant role
type RestaurantProfile struct {
	RestaurantName string  `json:"restaurantName"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
}

// Profiles holds one optional profile per role that requires extra data
type Profiles struct {
	Driver     *DriverProfile     `json:"driver,omitempty"`
	Restaurant *RestaurantProfile `json:"restaurant,omitempty"`
}

// Merge returns p with every profile present in other written over it.
// Profiles absent from other are kept.
func (p Profiles) Merge(other Profiles) Profiles {
	if other.Driver != nil {
		d := *other.Driver
		p.Driver = &d
	}
	if other.Restaurant != nil {
		r := *other.Restaurant
		p.Restaurant = &r
	}
	return p
}

// ExtraData flattens the profiles into the wire representation
func (p Profiles) ExtraData() ExtraData {
	var e ExtraData
	if p.Driver != nil {
		e.Vehicle = &p.Driver.Vehicle
	}
	if p.Restaurant != nil {
		e.RestaurantName = &p.Restaurant.RestaurantName
		e.Lat = &p.Restaurant.Lat
		e.Lng = &p.Restaurant.Lng
	}
	return e
}

// ExtraData is the flat role-specific payload accepted at registration.
// Pointer fields keep an explicit zero apart from an absent value.
type ExtraData struct {
	Vehicle        *string  `json:"vehicle,omitempty"`
	RestaurantName *string  `json:"restaurantName,omitempty"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
}

// Apply builds the profile of every role in roles that needs one, starting from
// the profile already in base and writing every field present in e over it.
// A required field must come from e or from base; otherwise a ValidationError
// names it.
func (e ExtraData) Apply(base Profiles, roles []UserRole) (Profiles, error) {
	var out Profiles
	for _, role := range roles {
		switch role {
		case RoleDriver:
			if base.Driver == nil && (e.Vehicle == nil || *e.Vehicle == "") {
				return Profiles{}, NewValidationError("extraData.vehicle", "driver role requires a vehicle")
			}
			var d DriverProfile
			if base.Driver != nil {
				d = *base.Driver
			}
			if e.Vehicle != nil && *e.Vehicle != "" {
				d.Vehicle = *e.Vehicle
			}
			out.Driver = &d
		case RoleRestaurant:
			if base.Restaurant == nil {
				switch {
				case e.RestaurantName == nil || *e.RestaurantName == "":
					return Profiles{}, NewValidationError("extraData.restaurantName", "restaurant role requires a restaurantName")
				case e.Lat == nil:
					return Profiles{}, NewValidationError("extraData.lat", "restaurant role requires lat")
				case e.Lng == nil:
					return Profiles{}, NewValidationError("extraData.lng", "restaurant role requires lng")
				}
			}
			var r RestaurantProfile
			if base.Restaurant != nil {
				r = *base.Restaurant
			}
			if e.RestaurantName != nil && *e.RestaurantName != "" {
				r.RestaurantName = *e.RestaurantName
			}
			if e.Lat != nil {
				r.Lat = *e.Lat
			}
			if e.Lng != nil {
				r.Lng = *e.Lng
			}
			out.Restaurant = &r
		}
	}
	return out, nil
}
