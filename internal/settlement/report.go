package settlement

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatReport renders a settlement result as the multi-line text summary
// posted back to the group chat. Pure presentation: deterministic, no state,
// zero-count categories are omitted.
func FormatReport(result Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏸 Kết quả ngày %s:\n\n", result.PlayDate.Format("02/01/2006"))

	fmt.Fprintf(&b, "📊 Chi phí:\n")
	fmt.Fprintf(&b, "- Sân: %d × %s = %sđ\n", result.CourtCount, formatK(result.Pricing.CourtPrice), formatVND(result.Breakdown.CourtCost))
	fmt.Fprintf(&b, "- Cầu: %d × %s = %sđ\n", result.ShuttleCount, formatK(result.Pricing.ShuttlePrice), formatVND(result.Breakdown.ShuttleCost))
	fmt.Fprintf(&b, "💰 Tổng: %sđ\n\n", formatVND(result.Total))

	fmt.Fprintf(&b, "👥 Tham gia (chia cả sân + cầu):\n")
	if result.GoingMale > 0 {
		fmt.Fprintf(&b, "- Nam: %d lượt × %sđ\n", result.GoingMale, formatVND(result.MaleShare))
	}
	if result.GoingFemale > 0 {
		fmt.Fprintf(&b, "- Nữ: %d lượt × %sđ\n", result.GoingFemale, formatVND(result.FemaleShare))
	}

	if result.NotGoingMale > 0 || result.NotGoingFemale > 0 {
		fmt.Fprintf(&b, "\n❌ Không tham gia (chỉ chia sân):\n")
		if result.NotGoingMale > 0 {
			fmt.Fprintf(&b, "- Nam: %d lượt × %sđ\n", result.NotGoingMale, formatVND(result.MaleNotGoingShare))
		}
		if result.NotGoingFemale > 0 {
			fmt.Fprintf(&b, "- Nữ: %d lượt × %sđ\n", result.NotGoingFemale, formatVND(result.FemaleNotGoingShare))
		}
	}

	fmt.Fprintf(&b, "\n📋 Tổng kết:\n")
	fmt.Fprintf(&b, "- Người tham gia: %d\n", result.Breakdown.TotalParticipants)
	if result.Breakdown.TotalNotGoing > 0 {
		fmt.Fprintf(&b, "- Người không tham gia: %d\n", result.Breakdown.TotalNotGoing)
	}
	fmt.Fprintf(&b, "- Chi phí nam tham gia: %sđ\n", formatVND(result.Breakdown.MaleTotal))
	fmt.Fprintf(&b, "- Chi phí nữ tham gia: %sđ\n", formatVND(result.Breakdown.FemaleTotal))
	if result.Breakdown.MaleNotGoingTotal > 0 {
		fmt.Fprintf(&b, "- Chi phí nam không tham gia: %sđ\n", formatVND(result.Breakdown.MaleNotGoingTotal))
	}
	if result.Breakdown.FemaleNotGoingTotal > 0 {
		fmt.Fprintf(&b, "- Chi phí nữ không tham gia: %sđ\n", formatVND(result.Breakdown.FemaleNotGoingTotal))
	}

	return b.String()
}

// formatVND groups thousands with dots, vi-VN style: 315000 -> "315.000".
func formatVND(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ".")
	if neg {
		return "-" + out
	}
	return out
}

// formatK renders a unit price in thousands: 120000 -> "120k".
func formatK(price int64) string {
	return strconv.FormatInt((price+500)/1000, 10) + "k"
}
