package dto

import "errors"

// TaxComputeRequest is the body of POST /tax/compute.
type TaxComputeRequest struct {
	NetIncome      float64 `json:"net_income"`
	Age            int     `json:"age"`
	AssessmentYear string  `json:"assessment_year"`
	Regime         Regime  `json:"regime"`
}

// Validate performs basic validation on the request
func (r *TaxComputeRequest) Validate() error {
	if r.AssessmentYear == "" {
		return errors.New("assessment_year is required")
	}
	if r.Regime != RegimeOld && r.Regime != RegimeNew {
		return errors.New(`regime must be "Old" or "New"`)
	}
	if r.Age < 0 {
		return errors.New("age must not be negative")
	}
	return nil
}
