package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

// Scheduler фоновый планировщик статусов бронирований
//
// Срабатывает не по периоду, а в моменты, когда статусы вообще могут
// измениться: на каждом начале слота из сетки и через 90 минут после
// него (предполагаемый конец посадки). Между срабатываниями спит
type Scheduler struct {
	source       ReservationSource
	transitioner StatusTransitioner
	timezone     *time.Location
	logger       Logger

	triggers []types.TimeString
}

// New создает планировщик статусов
func New(source ReservationSource, transitioner StatusTransitioner, timezone *time.Location, logger Logger) *Scheduler {
	return &Scheduler{
		source:       source,
		transitioner: transitioner,
		timezone:     timezone,
		logger:       logger,
		triggers:     buildTriggers(),
	}
}

// Run запускает цикл планировщика до отмены контекста
// Первый проход выполняется сразу, чтобы подобрать переходы,
// пропущенные за время простоя сервиса
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("scheduler: started, %d trigger times per day", len(s.triggers))

	s.Tick(ctx, time.Now().In(s.timezone))

	for {
		now := time.Now().In(s.timezone)
		next := s.nextTrigger(now)
		s.logger.Info("scheduler: next pass at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler: stopped")
			return
		case <-timer.C:
			s.Tick(ctx, time.Now().In(s.timezone))
		}
	}
}

// Tick один проход планировщика относительно момента now
//
// Для каждого активного бронирования:
// - now внутри интервала посадки - in_progress
// - now после конца посадки - finished
// - иначе бронирование не трогается
// Ошибка по одной записи не прерывает проход
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	reservations, err := s.source.GetNonCancelled(ctx)
	if err != nil {
		s.logger.Error("scheduler: failed to fetch reservations: %v", err)
		return
	}

	var updated int
	for _, r := range reservations {
		target, ok := s.targetStatus(r, now)
		if !ok || target == r.Status {
			continue
		}

		if err := s.transitioner.TransitionAsSystem(ctx, r.ID, target); err != nil {
			s.logger.Error("scheduler: failed to transition reservation id=%s to %s: %v", r.ID, target, err)
			continue
		}
		updated++
	}

	s.logger.Info("scheduler: pass complete, %d of %d reservations updated", updated, len(reservations))
}

// targetStatus вычисляет статус, который бронирование должно иметь
// в момент now. Второе значение false - переход не нужен
func (s *Scheduler) targetStatus(r *domain.Reservation, now time.Time) (domain.ReservationStatus, bool) {
	start, end, err := r.Interval(s.timezone)
	if err != nil {
		s.logger.Warn("scheduler: skipping reservation id=%s: %v", r.ID, err)
		return "", false
	}

	switch {
	case !now.Before(end):
		return domain.StatusFinished, true
	case !now.Before(start):
		return domain.StatusInProgress, true
	default:
		return "", false
	}
}

// nextTrigger возвращает ближайший момент срабатывания строго после now
func (s *Scheduler) nextTrigger(now time.Time) time.Time {
	hhmm := types.NewTimeString(now)
	for _, t := range s.triggers {
		if t.IsAfter(hhmm) {
			return atTime(now, t, s.timezone)
		}
	}
	// Все сегодняшние срабатывания позади - первое завтрашнее
	return atTime(now.AddDate(0, 0, 1), s.triggers[0], s.timezone)
}

// buildTriggers собирает отсортированный список времён срабатывания:
// начала слотов сетки и концы посадок (+90 минут)
// Слоты, чья посадка пересекает полночь, конца в списке не получают
func buildTriggers() []types.TimeString {
	seen := make(map[types.TimeString]struct{})
	triggers := make([]types.TimeString, 0, len(domain.SlotGrid)*2)

	add := func(t types.TimeString) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		triggers = append(triggers, t)
	}

	for _, slot := range domain.SlotGrid {
		add(slot)
		if end, err := slot.AddMinutes(domain.SeatingDurationMinutes); err == nil {
			add(end)
		}
	}

	sort.Slice(triggers, func(i, j int) bool {
		return triggers[i].IsBefore(triggers[j])
	})
	return triggers
}

// atTime строит момент в день day со временем t в таймзоне loc
func atTime(day time.Time, t types.TimeString, loc *time.Location) time.Time {
	parsed, _ := time.Parse(types.TimeFormat, t.String())
	y, m, d := day.Date()
	return time.Date(y, m, d, parsed.Hour(), parsed.Minute(), 0, 0, loc)
}
