package models

import "fmt"

// SearchMode selects the address-lookup strategy. The modes are mutually
// exclusive; switching modes clears the previously selected address.
type SearchMode string

const (
	SearchModePostcode SearchMode = "postcode"
	SearchModeHotel    SearchMode = "hotel"
	SearchModeAddress  SearchMode = "address"
)

func (m SearchMode) Valid() bool {
	switch m {
	case SearchModePostcode, SearchModeHotel, SearchModeAddress:
		return true
	}
	return false
}

// AddressType gates which detail field is required: hotels need a room
// number, everything else needs address details.
type AddressType string

const (
	AddressTypeHome   AddressType = "home"
	AddressTypeOffice AddressType = "office"
	AddressTypeHotel  AddressType = "hotel"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeHome, AddressTypeOffice, AddressTypeHotel:
		return true
	}
	return false
}

// Frequency is how often the collection repeats.
type Frequency string

const (
	FrequencyOnce      Frequency = "once"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyTwoWeeks  Frequency = "two-weeks"
	FrequencyFourWeeks Frequency = "four-weeks"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyWeekly, FrequencyTwoWeeks, FrequencyFourWeeks:
		return true
	}
	return false
}

// ContactType distinguishes individual and company customers. Company
// bookings additionally require a company name and tax number.
type ContactType string

const (
	ContactTypeIndividual ContactType = "individual"
	ContactTypeCompany    ContactType = "company"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeIndividual, ContactTypeCompany:
		return true
	}
	return false
}

// WashType is the sub-selection for the Wash service.
type WashType string

const (
	WashTypeMix      WashType = "mix"
	WashTypeSeparate WashType = "separate"
)

func (w WashType) Valid() bool {
	return w == WashTypeMix || w == WashTypeSeparate
}

// LineItem is one instance of a selected service with its locked-in price.
// Quantity is represented by repeated entries sharing the same ID, not a
// counter.
type LineItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"price"`
	WashType  WashType `json:"washType,omitempty"`
}

// BookingDraft is the full set of user-entered fields for one in-progress
// booking. It is owned by the booking session and mutated only through the
// wizard's update operations.
type BookingDraft struct {
	SearchMode       SearchMode  `json:"searchMode"`
	Postcode         string      `json:"postcode"`
	SelectedAddress  string      `json:"selectedAddress"`
	AddressType      AddressType `json:"addressType"`
	AddressDetails   string      `json:"addressDetails"`
	RoomNumber       string      `json:"roomNumber"`
	HotelName        string      `json:"hotelName"`
	AddressConfirmed bool        `json:"addressConfirmed"`

	CollectionDay         string `json:"collectionDay"`
	CollectionTime        string `json:"collectionTime"`
	CollectionInstruction string `json:"collectionInstruction"`

	DeliveryDay         string    `json:"deliveryDay"`
	DeliveryTime        string    `json:"deliveryTime"`
	DeliveryInstruction string    `json:"deliveryInstruction"`
	DriverNote          string    `json:"driverNote"`
	Frequency           Frequency `json:"frequency"`

	SelectedServices []LineItem `json:"selectedServices"`

	ContactType ContactType `json:"contactType"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	CompanyName string      `json:"companyName"`
	TaxNumber   string      `json:"taxNumber"`
}

// NewBookingDraft returns a draft with the defaults a fresh session starts
// from.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		SearchMode:       SearchModePostcode,
		AddressType:      AddressTypeHome,
		Frequency:        FrequencyOnce,
		ContactType:      ContactTypeIndividual,
		SelectedServices: []LineItem{},
	}
}

// TotalPrice is the arithmetic sum of unit prices over all selected
// services, duplicates included. Recomputed on demand, never cached.
func (d BookingDraft) TotalPrice() float64 {
	var sum float64
	for _, s := range d.SelectedServices {
		sum += s.UnitPrice
	}
	return sum
}

// DraftUpdate carries a partial set of draft fields. Nil fields are left
// untouched; the cart is updated through its own operations, never here.
type DraftUpdate struct {
	SearchMode       *SearchMode  `json:"searchMode,omitempty"`
	Postcode         *string      `json:"postcode,omitempty"`
	SelectedAddress  *string      `json:"selectedAddress,omitempty"`
	AddressType      *AddressType `json:"addressType,omitempty"`
	AddressDetails   *string      `json:"addressDetails,omitempty"`
	RoomNumber       *string      `json:"roomNumber,omitempty"`
	HotelName        *string      `json:"hotelName,omitempty"`
	AddressConfirmed *bool        `json:"addressConfirmed,omitempty"`

	CollectionDay         *string `json:"collectionDay,omitempty"`
	CollectionTime        *string `json:"collectionTime,omitempty"`
	CollectionInstruction *string `json:"collectionInstruction,omitempty"`

	DeliveryDay         *string    `json:"deliveryDay,omitempty"`
	DeliveryTime        *string    `json:"deliveryTime,omitempty"`
	DeliveryInstruction *string    `json:"deliveryInstruction,omitempty"`
	DriverNote          *string    `json:"driverNote,omitempty"`
	Frequency           *Frequency `json:"frequency,omitempty"`

	ContactType *ContactType `json:"contactType,omitempty"`
	FirstName   *string      `json:"firstName,omitempty"`
	LastName    *string      `json:"lastName,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Email       *string      `json:"email,omitempty"`
	CompanyName *string      `json:"companyName,omitempty"`
	TaxNumber   *string      `json:"taxNumber,omitempty"`
}

// Apply merges the update into the draft. Enum-typed fields are checked so
// an invalid mode or type can never enter the draft; everything else is
// plain assignment.
func (u DraftUpdate) Apply(d *BookingDraft) error {
	if u.SearchMode != nil {
		if !u.SearchMode.Valid() {
			return fmt.Errorf("invalid search mode %q", *u.SearchMode)
		}
		d.SearchMode = *u.SearchMode
	}
	if u.AddressType != nil {
		if !u.AddressType.Valid() {
			return fmt.Errorf("invalid address type %q", *u.AddressType)
		}
		d.AddressType = *u.AddressType
	}
	if u.Frequency != nil {
		if !u.Frequency.Valid() {
			return fmt.Errorf("invalid frequency %q", *u.Frequency)
		}
		d.Frequency = *u.Frequency
	}
	if u.ContactType != nil {
		if !u.ContactType.Valid() {
			return fmt.Errorf("invalid contact type %q", *u.ContactType)
		}
		d.ContactType = *u.ContactType
	}

	if u.Postcode != nil {
		d.Postcode = *u.Postcode
	}
	if u.SelectedAddress != nil {
		d.SelectedAddress = *u.SelectedAddress
	}
	if u.AddressDetails != nil {
		d.AddressDetails = *u.AddressDetails
	}
	if u.RoomNumber != nil {
		d.RoomNumber = *u.RoomNumber
	}
	if u.HotelName != nil {
		d.HotelName = *u.HotelName
	}
	if u.AddressConfirmed != nil {
		d.AddressConfirmed = *u.AddressConfirmed
	}
	if u.CollectionDay != nil {
		d.CollectionDay = *u.CollectionDay
	}
	if u.CollectionTime != nil {
		d.CollectionTime = *u.CollectionTime
	}
	if u.CollectionInstruction != nil {
		d.CollectionInstruction = *u.CollectionInstruction
	}
	if u.DeliveryDay != nil {
		d.DeliveryDay = *u.DeliveryDay
	}
	if u.DeliveryTime != nil {
		d.DeliveryTime = *u.DeliveryTime
	}
	if u.DeliveryInstruction != nil {
		d.DeliveryInstruction = *u.DeliveryInstruction
	}
	if u.DriverNote != nil {
		d.DriverNote = *u.DriverNote
	}
	if u.FirstName != nil {
		d.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		d.LastName = *u.LastName
	}
	if u.Phone != nil {
		d.Phone = *u.Phone
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.CompanyName != nil {
		d.CompanyName = *u.CompanyName
	}
	if u.TaxNumber != nil {
		d.TaxNumber = *u.TaxNumber
	}
	return nil
}
