package domain

import (
	"strconv"
	"strings"
)

// Room is the flat persisted shape. The wire shape groups capacity,
// location and coordinates into sub-objects, see RoomResponse.
type Room struct {
	ID                   string
	Name                 string
	Slug                 string
	Description          string
	ShortDescription     string
	Category             string
	Type                 string
	CapacityMin          int
	CapacityMax          int
	CapacityOptimal      int
	Size                 float64
	PricePerHour         float64
	PricePerDay          float64
	LocationAddress      string
	LocationCity         string
	LocationPostalCode   string
	LocationCountry      string
	LocationLat          float64
	LocationLng          float64
	Amenities            []RoomAmenity
	Services             []RoomService
	Images               []RoomImage
	ConfirmationRequired bool
	Rating               *float64
	Reviews              *int
}

type RoomAmenity struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RoomService struct {
	Icon            string   `json:"icon"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	IncludedInPrice bool     `json:"includedInPrice"`
	PriceIfExtra    *float64 `json:"priceIfExtra,omitempty"`
}

type RoomImage struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Featured *bool  `json:"featured,omitempty"`
}

type RoomCapacity struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Optimal int `json:"optimal"`
}

type RoomCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RoomLocation struct {
	Address     string          `json:"address"`
	City        string          `json:"city"`
	PostalCode  string          `json:"postalCode"`
	Country     string          `json:"country"`
	Coordinates RoomCoordinates `json:"coordinates"`
}

// CreateRoomRequest mirrors the public frontend contract, camelCase
// keys included.
type CreateRoomRequest struct {
	Name                 string        `json:"name"`
	Slug                 string        `json:"slug"`
	Description          string        `json:"description"`
	ShortDescription     string        `json:"shortDescription"`
	Category             string        `json:"category"`
	Type                 string        `json:"type"`
	Capacity             RoomCapacity  `json:"capacity"`
	Size                 float64       `json:"size"`
	PricePerHour         float64       `json:"pricePerHour"`
	PricePerDay          float64       `json:"pricePerDay"`
	Location             RoomLocation  `json:"location"`
	Amenities            []RoomAmenity `json:"amenities"`
	Services             []RoomService `json:"services"`
	Images               []RoomImage   `json:"images"`
	ConfirmationRequired bool          `json:"availabilityConfirmationRequired"`
	Rating               *float64      `json:"rating,omitempty"`
	Reviews              *int          `json:"reviews,omitempty"`
}

type CreateRoomResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type RoomResponse struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Slug                 string        `json:"slug"`
	Description          string        `json:"description"`
	ShortDescription     string        `json:"shortDescription"`
	Category             string        `json:"category"`
	Type                 string        `json:"type"`
	Capacity             RoomCapacity  `json:"capacity"`
	Size                 float64       `json:"size"`
	PricePerHour         float64       `json:"pricePerHour"`
	PricePerDay          float64       `json:"pricePerDay"`
	Location             RoomLocation  `json:"location"`
	Amenities            []RoomAmenity `json:"amenities"`
	Services             []RoomService `json:"services"`
	Images               []RoomImage   `json:"images"`
	ConfirmationRequired bool          `json:"availabilityConfirmationRequired"`
	Rating               *float64      `json:"rating"`
	Reviews              *int          `json:"reviews"`
}

func (r *CreateRoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
}

func (r *CreateRoomRequest) Validate() error {
	v := NewValidationError()
	if r.Name == "" {
		v.Add("name", "name is required")
	}
	if r.Slug == "" {
		v.Add("slug", "slug is required")
	} else if strings.ContainsAny(r.Slug, " /?#") {
		v.Add("slug", "slug must be a URL-safe identifier")
	}
	if r.Description == "" {
		v.Add("description", "description is required")
	}
	if r.ShortDescription == "" {
		v.Add("shortDescription", "short description is required")
	}
	if r.Category == "" {
		v.Add("category", "category is required")
	}
	if r.Type == "" {
		v.Add("type", "type is required")
	}

	// Capacity bounds invariant: min <= optimal <= max.
	if r.Capacity.Min < 1 {
		v.Add("capacity.min", "minimum capacity must be at least 1")
	}
	if r.Capacity.Optimal < r.Capacity.Min {
		v.Add("capacity.optimal", "optimal capacity must not be below the minimum")
	}
	if r.Capacity.Max < r.Capacity.Optimal {
		v.Add("capacity.max", "maximum capacity must not be below the optimal")
	}

	if r.Size <= 0 {
		v.Add("size", "size must be positive")
	}
	if r.PricePerHour < 0 {
		v.Add("pricePerHour", "hourly price must not be negative")
	}
	if r.PricePerDay < 0 {
		v.Add("pricePerDay", "daily price must not be negative")
	}

	if r.Location.Address == "" {
		v.Add("location.address", "address is required")
	}
	if r.Location.City == "" {
		v.Add("location.city", "city is required")
	}
	if r.Location.PostalCode == "" {
		v.Add("location.postalCode", "postal code is required")
	}
	if r.Location.Country == "" {
		v.Add("location.country", "country is required")
	}
	if lat := r.Location.Coordinates.Lat; lat < -90 || lat > 90 {
		v.Add("location.coordinates.lat", "latitude must be between -90 and 90")
	}
	if lng := r.Location.Coordinates.Lng; lng < -180 || lng > 180 {
		v.Add("location.coordinates.lng", "longitude must be between -180 and 180")
	}

	for i, a := range r.Amenities {
		if a.Icon == "" || a.Name == "" {
			v.Add(indexedField("amenities", i), "icon and name are required")
		}
	}
	for i, s := range r.Services {
		if s.Icon == "" || s.Name == "" || s.Description == "" {
			v.Add(indexedField("services", i), "icon, name and description are required")
		}
	}
	for i, img := range r.Images {
		if img.Src == "" || img.Alt == "" {
			v.Add(indexedField("images", i), "src and alt are required")
		}
	}

	return v.ErrOrNil()
}

func indexedField(list string, i int) string {
	return list + "[" + strconv.Itoa(i) + "]"
}

func (r *CreateRoomRequest) ToRoom() *Room {
	return &Room{
		Name:                 r.Name,
		Slug:                 r.Slug,
		Description:          r.Description,
		ShortDescription:     r.ShortDescription,
		Category:             r.Category,
		Type:                 r.Type,
		CapacityMin:          r.Capacity.Min,
		CapacityMax:          r.Capacity.Max,
		CapacityOptimal:      r.Capacity.Optimal,
		Size:                 r.Size,
		PricePerHour:         r.PricePerHour,
		PricePerDay:          r.PricePerDay,
		LocationAddress:      r.Location.Address,
		LocationCity:         r.Location.City,
		LocationPostalCode:   r.Location.PostalCode,
		LocationCountry:      r.Location.Country,
		LocationLat:          r.Location.Coordinates.Lat,
		LocationLng:          r.Location.Coordinates.Lng,
		Amenities:            r.Amenities,
		Services:             r.Services,
		Images:               r.Images,
		ConfirmationRequired: r.ConfirmationRequired,
		Rating:               r.Rating,
		Reviews:              r.Reviews,
	}
}

// ToResponse regroups the flat columns into the nested wire shape.
func (r *Room) ToResponse() *RoomResponse {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []RoomAmenity{}
	}
	services := r.Services
	if services == nil {
		services = []RoomService{}
	}
	images := r.Images
	if images == nil {
		images = []RoomImage{}
	}

	return &RoomResponse{
		ID:               r.ID,
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Type:             r.Type,
		Capacity: RoomCapacity{
			Min:     r.CapacityMin,
			Max:     r.CapacityMax,
			Optimal: r.CapacityOptimal,
		},
		Size:         r.Size,
		PricePerHour: r.PricePerHour,
		PricePerDay:  r.PricePerDay,
		Location: RoomLocation{
			Address:    r.LocationAddress,
			City:       r.LocationCity,
			PostalCode: r.LocationPostalCode,
			Country:    r.LocationCountry,
			Coordinates: RoomCoordinates{
				Lat: r.LocationLat,
				Lng: r.LocationLng,
			},
		},
		Amenities:            amenities,
		Services:             services,
		Images:               images,
		ConfirmationRequired: r.ConfirmationRequired,
		Rating:               r.Rating,
		Reviews:              r.Reviews,
	}
}
