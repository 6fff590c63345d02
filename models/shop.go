package models

import "time"

// ShopService is a single catalogue entry offered by a shop.
type ShopService struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// StaffMember is a person working at a shop.
type StaffMember struct {
	Name        string   `bson:"name" json:"name"`
	Role        string   `bson:"role" json:"role"`
	ImageURL    string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Bio         string   `bson:"bio,omitempty" json:"bio,omitempty"`
	WorkingDays []string `bson:"workingDays,omitempty" json:"workingDays,omitempty"`
}

// WorkingHours describes opening hours for one day of the week.
type WorkingHours struct {
	Day    string `bson:"day" json:"day"`
	Start  string `bson:"start" json:"start"`
	End    string `bson:"end" json:"end"`
	IsOpen bool   `bson:"isOpen" json:"isOpen"`
}

// Shop is a service provider on the marketplace. CurrentQueueLength and
// EstimatedWaitTime form the queue ledger: a derived cache over active
// bookings, mutated only as a side effect of booking transitions.
type Shop struct {
	ID                 string         `bson:"id" json:"id"`
	OwnerID            string         `bson:"ownerId" json:"ownerId"`
	ShopName           string         `bson:"shopName" json:"shopName"`
	Location           string         `bson:"location" json:"location"`
	Latitude           float64        `bson:"latitude" json:"latitude"`
	Longitude          float64        `bson:"longitude" json:"longitude"`
	ShopImageURL       string         `bson:"shopImageUrl,omitempty" json:"shopImageUrl,omitempty"`
	Category           string         `bson:"category" json:"category"`
	Services           []ShopService  `bson:"services,omitempty" json:"services,omitempty"`
	Staff              []StaffMember  `bson:"staff,omitempty" json:"staff,omitempty"`
	Rating             float64        `bson:"rating" json:"rating"`
	TotalReviews       int            `bson:"totalReviews" json:"totalReviews"`
	CurrentQueueLength int            `bson:"currentQueueLength" json:"currentQueueLength"`
	EstimatedWaitTime  int            `bson:"estimatedWaitTime" json:"estimatedWaitTime"` // minutes
	IsAvailable        bool           `bson:"isAvailable" json:"isAvailable"`
	WorkingHours       []WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}
