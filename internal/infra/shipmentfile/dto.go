package shipmentfile

type yamlContact struct {
	PhoneNumber             string `yaml:"phone_number"`
	FaxNumber               string `yaml:"fax_number"`
	EmailAddress            string `yaml:"email_address"`
	TaxIdentificationNumber string `yaml:"tax_identification_number"`
}

type yamlAddress struct {
	Name         string `yaml:"name"`
	Company      string `yaml:"company"`
	AddressLine1 string `yaml:"address_line_1"`
	AddressLine2 string `yaml:"address_line_2"`
	AddressLine3 string `yaml:"address_line_3"`
	City         string `yaml:"city"`
	StateCode    string `yaml:"state_code"`
	PostalCode   string `yaml:"postal_code"`
	CountryCode  string `yaml:"country_code"`
}

type yamlRecipientAddress struct {
	yamlAddress `yaml:",inline"`
	Residential bool `yaml:"residential"`
}

type yamlSender struct {
	yamlContact   `yaml:",inline"`
	Name          string      `yaml:"name"`
	ShipperNumber string      `yaml:"shipper_number"`
	Address       yamlAddress `yaml:"address"`
}

type yamlRecipient struct {
	yamlContact   `yaml:",inline"`
	CompanyName   string               `yaml:"company_name"`
	AttentionName string               `yaml:"attention_name"`
	LocationID    string               `yaml:"location_id"`
	Address       yamlRecipientAddress `yaml:"address"`
}

type yamlSoldTo struct {
	yamlRecipient `yaml:",inline"`
	Option        string `yaml:"option"`
}

type yamlDimensions struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type yamlPackage struct {
	PackagingType            string          `yaml:"packaging_type"`
	Weight                   float64         `yaml:"weight"`
	Description              string          `yaml:"description"`
	DeliveryConfirmationType int             `yaml:"delivery_confirmation_type"`
	InsuredValue             float64         `yaml:"insured_value"`
	Dimensions               *yamlDimensions `yaml:"dimensions"`
}

type yamlShipment struct {
	PickupType             string `yaml:"pickup_type"`
	PickupTypeCode         string `yaml:"pickup_type_code"`
	CustomerClassification string `yaml:"customer_classification"`

	Shipper yamlSender    `yaml:"shipper"`
	ShipTo  yamlRecipient `yaml:"ship_to"`
	SoldTo  *yamlSoldTo   `yaml:"sold_to"`

	Service  string   `yaml:"service"`
	Services []string `yaml:"services"`

	ReturnService    string        `yaml:"return_service"`
	Packages         []yamlPackage `yaml:"packages"`
	SaturdayDelivery bool          `yaml:"saturday_delivery"`
}

type yamlAddressRequest struct {
	yamlAddress   `yaml:",inline"`
	RequestOption int `yaml:"request_option"`
}
