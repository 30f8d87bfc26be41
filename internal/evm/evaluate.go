package evm

// TCPIUnbounded is reported as TCPI when no funds remain but work does.
const TCPIUnbounded = 9.99

// Evaluate computes EVM results for a metrics snapshot.
// It is total: zero denominators resolve to fixed policy values instead of NaN or Inf.
func Evaluate(m Metrics) Results {
	sv := m.EV - m.PV
	spi := 1.0
	if m.PV != 0 {
		spi = m.EV / m.PV
	}

	cv := m.EV - m.AC
	cpi := 1.0
	if m.AC != 0 {
		cpi = m.EV / m.AC
	}

	eac := m.BAC
	if cpi != 0 {
		eac = m.BAC / cpi
	}
	etc := eac - m.AC
	vac := m.BAC - eac

	workRemaining := m.BAC - m.EV
	fundsRemaining := m.BAC - m.AC
	var tcpi float64
	switch {
	case fundsRemaining > 0:
		tcpi = workRemaining / fundsRemaining
	case workRemaining > 0:
		tcpi = TCPIUnbounded
	default:
		tcpi = 0
	}

	estimatedDays := m.TotalDurationDays
	if spi != 0 {
		estimatedDays = m.TotalDurationDays / spi
	}

	return Results{
		SV:                      sv,
		SPI:                     spi,
		CV:                      cv,
		CPI:                     cpi,
		EAC:                     eac,
		ETC:                     etc,
		VAC:                     vac,
		TCPI:                    tcpi,
		EstimatedCompletionDays: estimatedDays,
		ScheduleVarianceDays:    estimatedDays - m.TotalDurationDays,
	}
}
