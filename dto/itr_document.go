package dto

// ITRDocument mirrors the sections of the income-tax department's JSON schema
// that the normalizer reads. Sections are pointers so that an absent section
// decodes to nil and every field falls back to its documented default instead
// of aborting the parse.
type ITRDocument struct {
	ITRForm          *ITRFormSection      `json:"ITRForm"`
	PartAGen1        *PartAGen1Section    `json:"PartA_Gen1"`
	FilingStatus     *FilingStatusSection `json:"FilingStatus"`
	PartBTTI         *PartBTTISection     `json:"PartB_TTI"`
	PartATotalIncome *TotalIncomeSection  `json:"PartA_TotalIncome"`
	ScheduleCG       *ScheduleCGSection   `json:"ScheduleCG"`
	TaxPaid          *TaxPaidSection      `json:"TaxPaid"`
}

type ITRFormSection struct {
	FormName       string `json:"FormName"`
	AssessmentYear string `json:"AssessmentYear"`
}

type PartAGen1Section struct {
	Name string `json:"Name"`
	PAN  string `json:"PAN"`
	DOB  string `json:"DOB"`
}

type FilingStatusSection struct {
	Status string `json:"Status"`
}

type PartBTTISection struct {
	// "Y" means the taxpayer opted into the new regime; anything else is Old.
	IsOptingForNewTaxRegime string `json:"isOptingForNewTaxRegime"`
}

type TotalIncomeSection struct {
	Salaries         float64            `json:"Salaries"`
	IncomeFromHP     float64            `json:"IncomeFromHP"`
	IncomeFromBP     float64            `json:"IncomeFromBP"`
	IncomeFromOS     float64            `json:"IncomeFromOS"`
	GrossTotalIncome float64            `json:"GrossTotalIncome"`
	Deductions       *DeductionsSection `json:"Deductions"`
	TotalDeductions  float64            `json:"TotalDeductions"`
}

type DeductionsSection struct {
	Section80C float64 `json:"Section80C"`
	Section80D float64 `json:"Section80D"`
	Section80G float64 `json:"Section80G"`
}

type ScheduleCGSection struct {
	TotalSTCG float64 `json:"TotalSTCG"`
	TotalLTCG float64 `json:"TotalLTCG"`
}

type TaxPaidSection struct {
	TDSOnSalaries     []TDSSalaryEntry  `json:"TDSonSalaries"`
	TDSOnOthThanSals  []TDSOtherEntry   `json:"TDSonOthThanSals"`
	AdvanceTax        []TaxPaymentEntry `json:"AdvanceTax"`
	SelfAssessmentTax []TaxPaymentEntry `json:"SelfAssessmentTax"`
}

type TDSSalaryEntry struct {
	EmployerName   string  `json:"EmployerName"`
	TotalTDSSalary float64 `json:"TotalTDSSalary"`
}

type TDSOtherEntry struct {
	DeductorName          string  `json:"DeductorName"`
	TotalTDSonOthThanSals float64 `json:"TotalTDSonOthThanSals"`
}

type TaxPaymentEntry struct {
	BSRCode string  `json:"BSRCode"`
	Date    string  `json:"Date"`
	Amt     float64 `json:"Amt"`
}
