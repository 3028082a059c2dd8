package wizard

import "laundrybook/models"

// gateForPage is the presence-only check a page must pass before advancing.
// Gating never validates formats; an empty-string field is the only failure.
func gateForPage(page int, d *models.BookingDraft) error {
	switch page {
	case PageAddress:
		if d.SelectedAddress == "" {
			return models.NewValidationError("please select an address first")
		}
		if d.AddressType == models.AddressTypeHotel {
			if d.RoomNumber == "" {
				return models.NewValidationError("please enter your room number")
			}
		} else if d.AddressDetails == "" {
			return models.NewValidationError("please enter your address details")
		}
	case PageCollectionDelivery:
		if d.CollectionDay == "" || d.CollectionTime == "" || d.CollectionInstruction == "" ||
			d.DeliveryDay == "" || d.DeliveryTime == "" || d.DeliveryInstruction == "" {
			return models.NewValidationError("please complete the collection and delivery schedule")
		}
	case PageServices:
		if len(d.SelectedServices) == 0 {
			return models.NewValidationError("no services selected")
		}
	case PageContact:
		if d.FirstName == "" || d.LastName == "" || d.Phone == "" || d.Email == "" {
			return models.NewValidationError("please fill in your contact details")
		}
		if d.ContactType == models.ContactTypeCompany && (d.CompanyName == "" || d.TaxNumber == "") {
			return models.NewValidationError("please fill in your company name and tax number")
		}
	}
	return nil
}
