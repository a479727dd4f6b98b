package settlement

// Calculate turns attendance buckets and resource counts into per-category
// shares and the per-user ledger. It is a pure function: no I/O, no clock,
// and it never fails — zero counts yield zero shares and an empty ledger.
func Calculate(att Attendance, pricing PricingPolicy) Result {
	courtTotal := int64(att.CourtCount) * pricing.CourtPrice
	shuttleTotal := int64(att.ShuttleCount) * pricing.ShuttlePrice
	total := courtTotal + shuttleTotal

	totalGoing := att.GoingMale + att.GoingFemale
	totalNotGoing := att.NotGoingMale + att.NotGoingFemale
	totalCourtSharing := totalGoing + totalNotGoing

	// Women pay the fixed tier; men absorb the remainder evenly. With no men
	// going, everyone splits the full cost evenly instead.
	femaleShare := pricing.FemalePrice
	var maleShare int64
	if totalGoing > 0 {
		if att.GoingMale > 0 {
			remaining := courtTotal + shuttleTotal - int64(att.GoingFemale)*pricing.FemalePrice
			maleShare = ceilRoundDiv(remaining, int64(att.GoingMale))
		} else {
			perPerson := ceilRoundDiv(courtTotal+shuttleTotal, int64(totalGoing))
			maleShare = perPerson
			femaleShare = perPerson
		}
	}

	// Absentees share court cost only; gender does not matter for them.
	var notGoingShare int64
	if totalNotGoing > 0 {
		notGoingShare = ceilRoundDiv(courtTotal, int64(totalCourtSharing))
	}

	shares := map[Category]int64{
		CategoryGoingMale:      maleShare,
		CategoryGoingFemale:    femaleShare,
		CategoryNotGoingMale:   notGoingShare,
		CategoryNotGoingFemale: notGoingShare,
	}

	ledger := foldLedger(att.Entries, shares)

	return Result{
		Total:        total,
		CourtCount:   att.CourtCount,
		ShuttleCount: att.ShuttleCount,

		GoingMale:      att.GoingMale,
		GoingFemale:    att.GoingFemale,
		NotGoingMale:   att.NotGoingMale,
		NotGoingFemale: att.NotGoingFemale,

		MaleShare:           maleShare,
		FemaleShare:         femaleShare,
		MaleNotGoingShare:   notGoingShare,
		FemaleNotGoingShare: notGoingShare,

		Breakdown: Breakdown{
			CourtCost:           courtTotal,
			ShuttleCost:         shuttleTotal,
			FemaleTotal:         int64(att.GoingFemale) * femaleShare,
			MaleTotal:           int64(att.GoingMale) * maleShare,
			MaleNotGoingTotal:   int64(att.NotGoingMale) * notGoingShare,
			FemaleNotGoingTotal: int64(att.NotGoingFemale) * notGoingShare,
			TotalParticipants:   totalGoing,
			TotalNotGoing:       totalNotGoing,
		},
		Ledger:  ledger,
		Pricing: pricing,
	}
}

// foldLedger accumulates responsibility entries into one ledger line per
// responsible user, keyed by user id, ordered by first appearance.
func foldLedger(entries []Responsibility, shares map[Category]int64) []LedgerEntry {
	index := make(map[int64]int, len(entries))
	ledger := make([]LedgerEntry, 0, len(entries))

	for _, entry := range entries {
		amount := shares[entry.Category]

		i, ok := index[entry.UserID]
		if !ok {
			i = len(ledger)
			index[entry.UserID] = i
			ledger = append(ledger, LedgerEntry{
				UserID: entry.UserID,
				Name:   entry.UserName,
				Gender: entry.UserGender,
			})
		}

		ledger[i].Amount += amount
		ledger[i].Details = append(ledger[i].Details, LedgerDetail{
			Kind:         entry.Kind,
			Amount:       amount,
			TargetName:   entry.TargetName,
			TargetGender: entry.TargetGender,
		})
	}

	return ledger
}
