package settlement

import (
	"github.com/hoangvt/caulong/internal/user"
	"github.com/hoangvt/caulong/internal/vote"
)

// Category identifies the pricing bucket a responsibility entry falls into
type Category string

const (
	CategoryGoingMale      Category = "going-male"
	CategoryGoingFemale    Category = "going-female"
	CategoryNotGoingMale   Category = "not-going-male"
	CategoryNotGoingFemale Category = "not-going-female"
)

// EntryKind distinguishes how a responsibility entry came to be
type EntryKind string

const (
	KindGoing         EntryKind = "going"
	KindProxyGoing    EntryKind = "proxy_going"
	KindNotGoing      EntryKind = "not_going"
	KindProxyNotGoing EntryKind = "proxy_not_going"
)

// Responsibility ties one attendance unit to the user who pays for it.
// For direct votes that is the voter; for proxy votes it is still the voter,
// while the target's gender picked the category.
type Responsibility struct {
	UserID     int64
	UserName   string
	UserGender string
	Category   Category
	Kind       EntryKind

	// Set for proxy entries only
	TargetName   string
	TargetGender string
}

// Attendance is the classifier output: bucket counts, effective resource
// counts, and the responsibility entries the ledger is folded from.
type Attendance struct {
	GoingMale      int
	GoingFemale    int
	NotGoingMale   int
	NotGoingFemale int

	// Session counts plus one per COURT/SHUTTLE pledge vote
	CourtCount   int
	ShuttleCount int

	Entries []Responsibility
}

// Classify partitions a session's votes into the four attendance buckets and
// derives the responsibility entries. Each vote or proxy vote counts as one
// attendance unit, regardless of whether the same physical person underlies
// several records.
func Classify(courtCount, shuttleCount int, votes []*vote.Vote, proxyVotes []*vote.ProxyVote) Attendance {
	att := Attendance{
		CourtCount:   courtCount,
		ShuttleCount: shuttleCount,
	}

	for _, v := range votes {
		switch v.VoteType {
		case vote.TypeGoing:
			if isFemale(v.UserGender) {
				att.GoingFemale++
			} else {
				att.GoingMale++
			}
		case vote.TypeNotGoing:
			if isFemale(v.UserGender) {
				att.NotGoingFemale++
			} else {
				att.NotGoingMale++
			}
		case vote.TypeCourt:
			att.CourtCount++
		case vote.TypeShuttle:
			att.ShuttleCount++
		}
	}

	for _, pv := range proxyVotes {
		switch pv.VoteType {
		case vote.TypeGoing:
			if isFemale(pv.TargetGender) {
				att.GoingFemale++
			} else {
				att.GoingMale++
			}
		case vote.TypeNotGoing:
			if isFemale(pv.TargetGender) {
				att.NotGoingFemale++
			} else {
				att.NotGoingMale++
			}
		}
	}

	// Entry order mirrors the ledger order: direct going, proxy going,
	// direct not-going, proxy not-going.
	for _, v := range votes {
		if v.VoteType != vote.TypeGoing {
			continue
		}
		att.Entries = append(att.Entries, Responsibility{
			UserID:     v.UserID,
			UserName:   v.UserName,
			UserGender: v.UserGender,
			Category:   goingCategory(v.UserGender),
			Kind:       KindGoing,
		})
	}
	for _, pv := range proxyVotes {
		if pv.VoteType != vote.TypeGoing {
			continue
		}
		att.Entries = append(att.Entries, Responsibility{
			UserID:       pv.VoterID,
			UserName:     pv.VoterName,
			UserGender:   pv.VoterGender,
			Category:     goingCategory(pv.TargetGender),
			Kind:         KindProxyGoing,
			TargetName:   pv.TargetName,
			TargetGender: pv.TargetGender,
		})
	}
	for _, v := range votes {
		if v.VoteType != vote.TypeNotGoing {
			continue
		}
		att.Entries = append(att.Entries, Responsibility{
			UserID:     v.UserID,
			UserName:   v.UserName,
			UserGender: v.UserGender,
			Category:   notGoingCategory(v.UserGender),
			Kind:       KindNotGoing,
		})
	}
	for _, pv := range proxyVotes {
		if pv.VoteType != vote.TypeNotGoing {
			continue
		}
		att.Entries = append(att.Entries, Responsibility{
			UserID:       pv.VoterID,
			UserName:     pv.VoterName,
			UserGender:   pv.VoterGender,
			Category:     notGoingCategory(pv.TargetGender),
			Kind:         KindProxyNotGoing,
			TargetName:   pv.TargetName,
			TargetGender: pv.TargetGender,
		})
	}

	return att
}

// isFemale applies the tiering rule: only an explicit "female" selects the
// female tier, everything else is priced as male.
func isFemale(gender string) bool {
	return gender == user.GenderFemale
}

func goingCategory(gender string) Category {
	if isFemale(gender) {
		return CategoryGoingFemale
	}
	return CategoryGoingMale
}

func notGoingCategory(gender string) Category {
	if isFemale(gender) {
		return CategoryNotGoingFemale
	}
	return CategoryNotGoingMale
}
