package library

// ItemType is the kind of input an item renders as.
type ItemType string

const (
	ItemText             ItemType = "text"
	ItemTextarea         ItemType = "textarea"
	ItemNumber           ItemType = "number"
	ItemDecimal          ItemType = "decimal"
	ItemCurrency         ItemType = "currency"
	ItemPercentage       ItemType = "percentage"
	ItemDate             ItemType = "date"
	ItemTime             ItemType = "time"
	ItemDateTime         ItemType = "datetime"
	ItemPhoto            ItemType = "photo"
	ItemPhotoBeforeAfter ItemType = "photo_before_after"
	ItemVideo            ItemType = "video"
	ItemAudio            ItemType = "audio"
	ItemFile             ItemType = "file"
	ItemSignature        ItemType = "signature"
	ItemInitials         ItemType = "initials"
	ItemCheckbox         ItemType = "checkbox"
	ItemYesNo            ItemType = "yes_no"
	ItemPassFail         ItemType = "pass_fail"
	ItemPassFailNA       ItemType = "pass_fail_na"
	ItemCondition        ItemType = "condition"
	ItemSeverity         ItemType = "severity"
	ItemRating           ItemType = "rating"
	ItemSlider           ItemType = "slider"
	ItemSelect           ItemType = "select"
	ItemMultiSelect      ItemType = "multiselect"
	ItemColoredSelect    ItemType = "colored_select"
	ItemCounter          ItemType = "counter"
	ItemMeasurement      ItemType = "measurement"
	ItemTemperature      ItemType = "temperature"
	ItemPressure         ItemType = "pressure"
	ItemMeterReading     ItemType = "meter_reading"
	ItemTimer            ItemType = "timer"
	ItemGPS              ItemType = "gps"
	ItemAddress          ItemType = "address"
	ItemBarcode          ItemType = "barcode"
	ItemQRCode           ItemType = "qr_code"
	ItemSerialNumber     ItemType = "serial_number"
	ItemContact          ItemType = "contact"
	ItemEmail            ItemType = "email"
	ItemPhone            ItemType = "phone"
	ItemAnnotation       ItemType = "annotation"
	ItemInstruction      ItemType = "instruction"
	ItemHeading          ItemType = "heading"
)

var itemTypes = map[ItemType]struct{}{
	ItemText: {}, ItemTextarea: {}, ItemNumber: {}, ItemDecimal: {}, ItemCurrency: {},
	ItemPercentage: {}, ItemDate: {}, ItemTime: {}, ItemDateTime: {}, ItemPhoto: {},
	ItemPhotoBeforeAfter: {}, ItemVideo: {}, ItemAudio: {}, ItemFile: {}, ItemSignature: {},
	ItemInitials: {}, ItemCheckbox: {}, ItemYesNo: {}, ItemPassFail: {}, ItemPassFailNA: {},
	ItemCondition: {}, ItemSeverity: {}, ItemRating: {}, ItemSlider: {}, ItemSelect: {},
	ItemMultiSelect: {}, ItemColoredSelect: {}, ItemCounter: {}, ItemMeasurement: {},
	ItemTemperature: {}, ItemPressure: {}, ItemMeterReading: {}, ItemTimer: {}, ItemGPS: {},
	ItemAddress: {}, ItemBarcode: {}, ItemQRCode: {}, ItemSerialNumber: {}, ItemContact: {},
	ItemEmail: {}, ItemPhone: {}, ItemAnnotation: {}, ItemInstruction: {}, ItemHeading: {},
}

// Valid reports whether t is one of the known item kinds.
func (t ItemType) Valid() bool {
	_, ok := itemTypes[t]
	return ok
}

// NeedsOptions reports whether the item kind is a choice list.
func (t ItemType) NeedsOptions() bool {
	return t == ItemSelect || t == ItemMultiSelect
}
