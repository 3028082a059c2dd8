package wizard

// Six logical steps appear on five pages; the collection/delivery page
// completes two steps at once.
const (
	StepAddress = iota
	StepCollectionTime
	StepDeliveryTime
	StepServices
	StepContact
	StepPayment
)

const (
	PageAddress = iota
	PageCollectionDelivery
	PageServices
	PageContact
	PagePayment

	lastPage = PagePayment
)

// pageSteps maps each page to the steps it completes on advancing.
var pageSteps = map[int][]int{
	PageAddress:            {StepAddress},
	PageCollectionDelivery: {StepCollectionTime, StepDeliveryTime},
	PageServices:           {StepServices},
	PageContact:            {StepContact},
	PagePayment:            {StepPayment},
}

// stepPage maps each step to the page it appears on.
var stepPage = map[int]int{
	StepAddress:        PageAddress,
	StepCollectionTime: PageCollectionDelivery,
	StepDeliveryTime:   PageCollectionDelivery,
	StepServices:       PageServices,
	StepContact:        PageContact,
	StepPayment:        PagePayment,
}

var stepLabels = map[int]string{
	StepAddress:        "Address",
	StepCollectionTime: "Collection Time",
	StepDeliveryTime:   "Delivery Time",
	StepServices:       "Selected Services",
	StepContact:        "Contact",
	StepPayment:        "Payment",
}
