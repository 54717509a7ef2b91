package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// PerquisiteCalculator values every declared non-cash benefit. Each rule is
// a pure function of its declared fields, the regime and the basic+DA
// reference; every rule returns zero under the new regime and clamps
// negative intermediates to zero.
type PerquisiteCalculator struct {
	Config domain.PerquisiteConfig
}

// NewPerquisiteCalculator creates a perquisite calculator from statutory config
func NewPerquisiteCalculator(config domain.PerquisiteConfig) *PerquisiteCalculator {
	return &PerquisiteCalculator{Config: config}
}

// Total sums every perquisite contribution for the year.
func (pc *PerquisiteCalculator) Total(p *domain.Perquisites, regime domain.TaxRegime, basicDA, grossSalary decimal.Money) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}

	total := decimal.Sum(
		pc.Accommodation(&p.Accommodation, regime, basicDA),
		pc.Car(&p.Car, regime),
		pc.Medical(&p.Medical, regime, grossSalary),
		pc.LTA(&p.LTA, regime),
		pc.ESOP(&p.ESOP, regime),
		pc.AssetTransfer(&p.AssetTransfer, regime),
		pc.Utilities(p, regime),
		pc.Education(p, regime),
		pc.MovableAssetUse(p, regime),
		pc.GiftVouchers(p, regime),
		pc.Club(p, regime),
		pc.Lunch(p, regime),
		pc.DomesticServant(p, regime),
	)
	for i := range p.Loans {
		total = total.Add(pc.LoanBenefit(&p.Loans[i], regime))
	}
	return total
}

// Accommodation values employer-provided housing. Government housing is the
// license fee less rent recovered; employer-owned uses a city-tier
// percentage of basic+DA; leased is the lower of rent paid and 10% of
// basic+DA; hotel stays of at least the minimum days use the lower of
// charges and 24% of basic+DA. Furniture is valued separately on top.
func (pc *PerquisiteCalculator) Accommodation(a *domain.AccommodationPerk, regime domain.TaxRegime, basicDA decimal.Money) decimal.Money {
	if regime.IsNew() || !a.Provided {
		return decimal.Zero()
	}

	var value decimal.Money
	switch a.Type {
	case domain.AccommodationGovernment:
		value = a.LicenseFee.Sub(a.EmployeeRent).NonNegative()
	case domain.AccommodationEmployerOwned:
		pct := pc.Config.AccommodationPctTier3
		switch a.CityPopulationTier {
		case 1:
			pct = pc.Config.AccommodationPctTier1
		case 2:
			pct = pc.Config.AccommodationPctTier2
		}
		value = basicDA.Percent(pct).Sub(a.EmployeeRent).NonNegative()
	case domain.AccommodationLeased:
		value = decimal.Min(a.RentPaidByEmployer, basicDA.Percent(pc.Config.LeasedAccommodationPct))
		value = value.Sub(a.EmployeeRent).NonNegative()
	case domain.AccommodationHotel:
		if a.HotelDays < pc.Config.HotelMinDays {
			return decimal.Zero()
		}
		value = decimal.Min(a.HotelCharges, basicDA.Percent(pc.Config.HotelPct))
		value = value.Sub(a.EmployeeRent).NonNegative()
	default:
		return decimal.Zero()
	}

	return value.Add(pc.furniture(a))
}

// furniture adds 10% per annum of cost for employer-owned furniture or the
// full hire charges otherwise, less the employee's contribution.
func (pc *PerquisiteCalculator) furniture(a *domain.AccommodationPerk) decimal.Money {
	if !a.FurnitureProvided {
		return decimal.Zero()
	}
	var value decimal.Money
	if a.FurnitureOwnedByEmployer {
		value = a.FurnitureCost.Percent(pc.Config.FurnitureOwnedPct)
	} else {
		value = a.FurnitureHireCharges
	}
	return value.Sub(a.EmployeeFurnitureContribution).NonNegative()
}

// Car values an employer-provided car. Business-only use is not a
// perquisite; personal-only use is the full employer cost over the months
// provided; mixed use is a fixed monthly rate by engine capacity and who
// bears the running expenses, plus a flat add-on for a driver.
func (pc *PerquisiteCalculator) Car(c *domain.CarPerk, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() || !c.Provided {
		return decimal.Zero()
	}

	months := int64(c.Months)
	if months <= 0 {
		months = 12
	}

	var value decimal.Money
	switch c.Usage {
	case domain.CarBusinessOnly:
		return decimal.Zero()
	case domain.CarPersonalOnly:
		value = c.EmployerCost
	case domain.CarMixedUse:
		small := c.EngineCC <= pc.Config.CarEngineCCThreshold
		var monthly decimal.Money
		if c.ExpensesReimbursed {
			monthly = pc.Config.CarMonthlyLargeReimb
			if small {
				monthly = pc.Config.CarMonthlySmallReimb
			}
		} else {
			monthly = pc.Config.CarMonthlyLargeNoReimb
			if small {
				monthly = pc.Config.CarMonthlySmallNoReimb
			}
		}
		value = monthly.MulInt(months)
	default:
		return decimal.Zero()
	}

	if c.DriverProvided {
		value = value.Add(pc.Config.DriverMonthly.MulInt(months))
	}
	return value.NonNegative()
}

// Medical values employer-funded treatment. Domestic treatment is exempt up
// to a fixed threshold. Overseas medical is exempt to the RBI-permitted
// portion; overseas travel is exempt only when gross salary is within the
// statutory limit.
func (pc *PerquisiteCalculator) Medical(m *domain.MedicalPerk, regime domain.TaxRegime, grossSalary decimal.Money) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}

	domestic := m.DomesticAmount.Sub(pc.Config.MedicalDomesticLimit).NonNegative()

	overseas := m.OverseasMedical.Sub(m.OverseasMedicalPermitted).NonNegative()

	travel := decimal.Zero()
	if grossSalary.GreaterThan(pc.Config.OverseasGrossSalaryLimit) {
		travel = m.OverseasTravel
	}

	return decimal.Sum(domestic, overseas, travel)
}

// LTA exempts travel assistance up to the lowest-fare equivalent for at
// most the permitted claims per block. One claim past the limit makes the
// full amount taxable, not just the excess.
func (pc *PerquisiteCalculator) LTA(l *domain.LTAPerk, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	if l.AmountReceived.IsZero() {
		return decimal.Zero()
	}
	if l.ClaimsInBlock > pc.Config.LTAMaxClaims {
		return l.AmountReceived
	}
	exempt := decimal.Min(l.AmountReceived, l.LowestFareCost)
	return l.AmountReceived.Sub(exempt).NonNegative()
}

// LoanBenefit values an interest-free or concessional loan. Medical-purpose
// loans and principals at or below the statutory floor are exempt. The
// benefit is the benchmark-versus-company rate difference on the
// outstanding principal, prorated by months; when an EMI is declared the
// outstanding is simulated month by month against the amortization
// schedule.
func (pc *PerquisiteCalculator) LoanBenefit(l *domain.LoanPerk, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	if l.Purpose == domain.LoanPurposeMedical {
		return decimal.Zero()
	}
	if l.Principal.LessThanOrEqual(pc.Config.LoanPrincipalFloor) {
		return decimal.Zero()
	}

	rateDiff := pc.Config.LoanBenchmarkRate.Sub(l.CompanyRate)
	if !rateDiff.IsPositive() {
		return decimal.Zero()
	}

	months := int64(l.Months)
	if months <= 0 {
		months = 12
	}

	outstanding := l.Outstanding
	if outstanding.IsZero() {
		outstanding = l.Principal
	}

	if l.MonthlyEMI.IsPositive() {
		benefit := decimal.Zero()
		for m := int64(0); m < months && outstanding.IsPositive(); m++ {
			benefit = benefit.Add(rateDiff.ApplyTo(outstanding).DivInt(12))
			outstanding = outstanding.Sub(l.MonthlyEMI).NonNegative()
		}
		return benefit
	}

	return rateDiff.ApplyTo(outstanding).MulInt(months).DivInt(12).NonNegative()
}

// ESOP values exercised options at the exercise-over-allotment spread.
func (pc *PerquisiteCalculator) ESOP(e *domain.ESOPPerk, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() || e.Shares <= 0 {
		return decimal.Zero()
	}
	spread := e.ExercisePrice.Sub(e.AllotmentPrice).NonNegative()
	return spread.MulInt(e.Shares)
}

// AssetTransfer values a movable asset sold to the employee below its
// depreciated cost. Computers and cars depreciate on written-down value,
// other assets on straight line.
func (pc *PerquisiteCalculator) AssetTransfer(t *domain.AssetTransferPerk, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() || t.OriginalCost.IsZero() {
		return decimal.Zero()
	}

	depreciated := t.OriginalCost
	switch t.AssetType {
	case "computer":
		for y := 0; y < t.YearsUsed; y++ {
			depreciated = depreciated.Sub(depreciated.Percent(pc.Config.DepreciationComputerPct))
		}
	case "car":
		for y := 0; y < t.YearsUsed; y++ {
			depreciated = depreciated.Sub(depreciated.Percent(pc.Config.DepreciationCarPct))
		}
	default:
		total := t.OriginalCost.Percent(pc.Config.DepreciationOtherPct).MulInt(int64(t.YearsUsed))
		depreciated = t.OriginalCost.Sub(total)
	}

	return depreciated.NonNegative().Sub(t.AmountRecovered).NonNegative()
}

// Utilities values gas, electricity and water paid by the employer, less
// any amount recovered from the employee.
func (pc *PerquisiteCalculator) Utilities(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	return p.UtilityBills.Sub(p.UtilityRecovered).NonNegative()
}

// Education values employer-run schooling above the per-child monthly
// threshold.
func (pc *PerquisiteCalculator) Education(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() || p.ChildrenEducationCost.IsZero() {
		return decimal.Zero()
	}
	months := int64(p.EducationMonths)
	if months <= 0 {
		months = 12
	}
	children := int64(p.ChildrenInSchool)
	if children <= 0 {
		children = 1
	}
	exempt := pc.Config.EducationPerChildMonthly.MulInt(children).MulInt(months)
	return p.ChildrenEducationCost.Sub(exempt).NonNegative()
}

// MovableAssetUse values personal use of an employer-owned movable asset at
// a fixed percentage of cost per annum, prorated by months.
func (pc *PerquisiteCalculator) MovableAssetUse(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() || p.MovableAssetCost.IsZero() {
		return decimal.Zero()
	}
	months := int64(p.MovableAssetMonths)
	if months <= 0 {
		months = 12
	}
	return p.MovableAssetCost.Percent(pc.Config.AssetUsePctPerYear).MulInt(months).DivInt(12)
}

// GiftVouchers are fully exempt at or below the ceiling. Above it the
// entire amount is taxable, not just the excess.
func (pc *PerquisiteCalculator) GiftVouchers(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	if p.GiftVouchers.LessThanOrEqual(pc.Config.GiftVoucherCeiling) {
		return decimal.Zero()
	}
	return p.GiftVouchers
}

// Club values club expenses borne by the employer less the amount
// recovered.
func (pc *PerquisiteCalculator) Club(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	return p.ClubExpenses.Sub(p.ClubRecovered).NonNegative()
}

// Lunch values employer-provided meals above the exempt per-meal amount.
func (pc *PerquisiteCalculator) Lunch(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() || p.MealsProvided <= 0 {
		return decimal.Zero()
	}
	perMeal := p.CostPerMeal.Sub(pc.Config.LunchExemptPerMeal).NonNegative()
	return perMeal.MulInt(p.MealsProvided)
}

// DomesticServant values a servant's salary paid by the employer less the
// amount recovered.
func (pc *PerquisiteCalculator) DomesticServant(p *domain.Perquisites, regime domain.TaxRegime) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	return p.DomesticServantSalary.Sub(p.DomesticServantRecovered).NonNegative()
}
