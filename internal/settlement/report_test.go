package settlement

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoangvt/caulong/internal/vote"
)

func TestFormatReportGolden(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Binh", "male", vote.TypeGoing),
		directVote(3, "Cuong", "male", vote.TypeGoing),
		directVote(4, "Chi", "female", vote.TypeGoing),
		directVote(5, "Hoa", "female", vote.TypeGoing),
	}

	att := Classify(2, 3, votes, nil)
	result := Calculate(att, DefaultPricing())
	result.PlayDate = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	want := "🏸 Kết quả ngày 15/01/2026:\n" +
		"\n" +
		"📊 Chi phí:\n" +
		"- Sân: 2 × 120k = 240.000đ\n" +
		"- Cầu: 3 × 25k = 75.000đ\n" +
		"💰 Tổng: 315.000đ\n" +
		"\n" +
		"👥 Tham gia (chia cả sân + cầu):\n" +
		"- Nam: 3 lượt × 79.000đ\n" +
		"- Nữ: 2 lượt × 40.000đ\n" +
		"\n" +
		"📋 Tổng kết:\n" +
		"- Người tham gia: 5\n" +
		"- Chi phí nam tham gia: 237.000đ\n" +
		"- Chi phí nữ tham gia: 80.000đ\n"

	assert.Equal(t, want, FormatReport(result))
}

func TestFormatReportAbsenteeBlock(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Dung", "male", vote.TypeNotGoing),
	}

	att := Classify(1, 0, votes, nil)
	result := Calculate(att, DefaultPricing())
	result.PlayDate = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	report := FormatReport(result)

	assert.Contains(t, report, "❌ Không tham gia (chỉ chia sân):")
	assert.Contains(t, report, "- Người không tham gia: 1")
	assert.NotContains(t, report, "- Nữ:", "zero-count categories are omitted")
}

func TestFormatReportOmitsZeroCategories(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "Chi", "female", vote.TypeGoing),
	}

	att := Classify(1, 1, votes, nil)
	result := Calculate(att, DefaultPricing())
	result.PlayDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	report := FormatReport(result)

	assert.Contains(t, report, "🏸 Kết quả ngày 02/03/2026:")
	assert.NotContains(t, report, "- Nam:")
	assert.NotContains(t, report, "❌")
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0", formatVND(0))
	assert.Equal(t, "315.000", formatVND(315000))
	assert.Equal(t, "1.234.567", formatVND(1234567))
	assert.Equal(t, "999", formatVND(999))
	assert.Equal(t, "-48.000", formatVND(-48000))
}

func TestFormatK(t *testing.T) {
	assert.Equal(t, "120k", formatK(120000))
	assert.Equal(t, "25k", formatK(25000))
}

func TestReportEndsWithNewline(t *testing.T) {
	result := Calculate(Classify(1, 1, nil, nil), DefaultPricing())
	assert.True(t, strings.HasSuffix(FormatReport(result), "\n"))
}
