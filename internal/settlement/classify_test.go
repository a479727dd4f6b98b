package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvt/caulong/internal/vote"
)

func directVote(userID int64, name, gender string, t vote.Type) *vote.Vote {
	return &vote.Vote{UserID: userID, UserName: name, UserGender: gender, VoteType: t}
}

func proxyVote(voterID int64, voterName, voterGender, targetName, targetGender string, t vote.Type) *vote.ProxyVote {
	return &vote.ProxyVote{
		VoterID:      voterID,
		VoterName:    voterName,
		VoterGender:  voterGender,
		TargetName:   targetName,
		TargetGender: targetGender,
		VoteType:     t,
	}
}

func TestClassifyBuckets(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Binh", "male", vote.TypeGoing),
		directVote(3, "Chi", "female", vote.TypeGoing),
		directVote(4, "Dung", "male", vote.TypeNotGoing),
		directVote(5, "Em", "female", vote.TypeNotGoing),
	}

	att := Classify(2, 3, votes, nil)

	assert.Equal(t, 2, att.GoingMale)
	assert.Equal(t, 1, att.GoingFemale)
	assert.Equal(t, 1, att.NotGoingMale)
	assert.Equal(t, 1, att.NotGoingFemale)
	assert.Equal(t, 2, att.CourtCount)
	assert.Equal(t, 3, att.ShuttleCount)
	assert.Len(t, att.Entries, 5)
}

func TestClassifyResourcePledges(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(1, "An", "male", vote.TypeCourt),
		directVote(2, "Binh", "male", vote.TypeShuttle),
		directVote(2, "Binh", "male", vote.TypeShuttle),
	}

	att := Classify(2, 3, votes, nil)

	assert.Equal(t, 3, att.CourtCount, "each COURT pledge raises the court count")
	assert.Equal(t, 5, att.ShuttleCount, "each SHUTTLE pledge raises the shuttle count")
	// Pledges are not attendance: only the VOTE_YES produced an entry.
	assert.Equal(t, 1, att.GoingMale)
	assert.Len(t, att.Entries, 1)
}

func TestClassifyProxyResponsibility(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
	}
	proxies := []*vote.ProxyVote{
		proxyVote(1, "An", "male", "Hoa", "female", vote.TypeGoing),
	}

	att := Classify(1, 0, votes, proxies)

	// The target's gender picks the bucket.
	assert.Equal(t, 1, att.GoingMale)
	assert.Equal(t, 1, att.GoingFemale)

	require.Len(t, att.Entries, 2)
	proxy := att.Entries[1]
	assert.Equal(t, int64(1), proxy.UserID, "responsibility binds to the voter")
	assert.Equal(t, CategoryGoingFemale, proxy.Category, "tier follows the target")
	assert.Equal(t, KindProxyGoing, proxy.Kind)
	assert.Equal(t, "Hoa", proxy.TargetName)
}

func TestClassifyUnknownGenderCountsAsMale(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "", vote.TypeGoing),
		directVote(2, "Binh", "other", vote.TypeGoing),
	}

	att := Classify(1, 0, votes, nil)

	assert.Equal(t, 2, att.GoingMale)
	assert.Equal(t, 0, att.GoingFemale)
}

func TestClassifyEntryOrder(t *testing.T) {
	votes := []*vote.Vote{
		directVote(4, "Dung", "male", vote.TypeNotGoing),
		directVote(1, "An", "male", vote.TypeGoing),
	}
	proxies := []*vote.ProxyVote{
		proxyVote(1, "An", "male", "Hoa", "female", vote.TypeGoing),
		proxyVote(2, "Binh", "male", "Lan", "female", vote.TypeNotGoing),
	}

	att := Classify(1, 0, votes, proxies)

	require.Len(t, att.Entries, 4)
	assert.Equal(t, KindGoing, att.Entries[0].Kind)
	assert.Equal(t, KindProxyGoing, att.Entries[1].Kind)
	assert.Equal(t, KindNotGoing, att.Entries[2].Kind)
	assert.Equal(t, KindProxyNotGoing, att.Entries[3].Kind)
}
