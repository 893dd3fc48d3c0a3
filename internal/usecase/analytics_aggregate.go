package usecase

import (
	"sort"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/response"
)

// MonthLabel format label bulan di seri analytics
const MonthLabel = "Jan 2006"

func monthStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

func sortedMonths[V any](m map[time.Time]V) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// groupRevenueByMonth - hanya booking confirmed yang dihitung
func groupRevenueByMonth(facts []entity.BookingFact, loc *time.Location) []response.MonthlyRevenue {
	type bucket struct {
		revenue  float64
		bookings int
	}

	buckets := make(map[time.Time]*bucket)
	for _, f := range facts {
		if f.Status != entity.BookingStatusConfirmed {
			continue
		}
		key := monthStart(f.CreatedAt, loc)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.revenue += f.Revenue()
		b.bookings++
	}

	out := make([]response.MonthlyRevenue, 0, len(buckets))
	for _, key := range sortedMonths(buckets) {
		b := buckets[key]
		out = append(out, response.MonthlyRevenue{
			Month:    key.Format(MonthLabel),
			Revenue:  response.RoundMoney(b.revenue),
			Bookings: b.bookings,
		})
	}
	return out
}

func groupBookingTrends(facts []entity.BookingFact, loc *time.Location) []response.MonthlyBookingTrend {
	buckets := make(map[time.Time]*response.MonthlyBookingTrend)
	for _, f := range facts {
		key := monthStart(f.CreatedAt, loc)
		b, ok := buckets[key]
		if !ok {
			b = &response.MonthlyBookingTrend{Month: key.Format(MonthLabel)}
			buckets[key] = b
		}
		switch f.Status {
		case entity.BookingStatusConfirmed:
			b.Confirmed++
		case entity.BookingStatusPending:
			b.Pending++
		case entity.BookingStatusCancelled:
			b.Cancelled++
		}
		b.Total++
	}

	out := make([]response.MonthlyBookingTrend, 0, len(buckets))
	for _, key := range sortedMonths(buckets) {
		out = append(out, *buckets[key])
	}
	return out
}

// groupUserGrowth - base = jumlah user sebelum awal range
func groupUserGrowth(registrations []time.Time, base int64, loc *time.Location) []response.MonthlyUserGrowth {
	counts := make(map[time.Time]int)
	for _, t := range registrations {
		counts[monthStart(t, loc)]++
	}

	out := make([]response.MonthlyUserGrowth, 0, len(counts))
	total := base
	for _, key := range sortedMonths(counts) {
		total += int64(counts[key])
		out = append(out, response.MonthlyUserGrowth{
			Month:      key.Format(MonthLabel),
			NewUsers:   counts[key],
			TotalUsers: total,
		})
	}
	return out
}

func toPopularPackages(items []entity.PackagePopularity) []response.PopularPackage {
	out := make([]response.PopularPackage, 0, len(items))
	for _, p := range items {
		out = append(out, response.PopularPackage{
			ID:            p.PackageID.String(),
			Name:          p.Name,
			Type:          p.Type,
			Location:      p.Location,
			Price:         p.Price,
			Bookings:      p.Bookings,
			Revenue:       response.RoundMoney(p.Price * float64(p.Bookings)),
			AverageRating: response.RoundRating(p.AverageRating),
			Views:         p.ViewCount,
		})
	}
	return out
}
