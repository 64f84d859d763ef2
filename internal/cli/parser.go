package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/repository"
	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/service"
	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/utils"
)

// RunLine executes one command line against the facade and returns the
// reply string. An empty line yields an empty reply. The command verb
// is case-insensitive; arguments are taken verbatim (movie titles and
// cinema names are exact-match keys downstream, so no folding happens
// here either).
//
// Commands:
//
//	REGISTER_SHOW <cinema> <movie> <date> <time> <price> <capacity>
//	START_SHOW <show_id>
//	END_SHOW <show_id>
//	UPDATE_PRICE <show_id> <new_price>
//	ORDER_TICKETS <movie> <date> <time> <qty>
//	CANCEL_BOOKING <booking_id>
//	REPORT_REVENUE [cinema]
func RunLine(svc *service.CinemaService, line string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return ""
	}

	switch strings.ToUpper(parts[0]) {
	case "REGISTER_SHOW":
		if len(parts) < 6 {
			return ErrReplyInvalidInput
		}
		cinema, movie := parts[1], parts[2]
		startTime, j, err := joinDateTime(parts, 3)
		if err != nil || j+1 >= len(parts) {
			return ErrReplyInvalidInput
		}
		price, err1 := strconv.ParseInt(parts[j], 10, 64)
		capacity, err2 := strconv.Atoi(parts[j+1])
		if err1 != nil || err2 != nil {
			return ErrReplyInvalidInput
		}
		showID, err := svc.RegisterShow(cinema, movie, startTime, price, capacity)
		if err != nil {
			return errorReply(err)
		}
		return ReplyOK + " " + showID

	case "START_SHOW":
		if len(parts) != 2 {
			return ErrReplyInvalidInput
		}
		if err := svc.StartShow(parts[1]); err != nil {
			return errorReply(err)
		}
		return ReplyOK

	case "END_SHOW":
		if len(parts) != 2 {
			return ErrReplyInvalidInput
		}
		if err := svc.EndShow(parts[1]); err != nil {
			return errorReply(err)
		}
		return ReplyOK

	case "UPDATE_PRICE":
		if len(parts) != 3 {
			return ErrReplyInvalidInput
		}
		price, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return ErrReplyInvalidInput
		}
		if err := svc.UpdatePrice(parts[1], price); err != nil {
			return errorReply(err)
		}
		return ReplyOK

	case "ORDER_TICKETS":
		if len(parts) < 4 {
			return ErrReplyInvalidInput
		}
		movie := parts[1]
		startTime, j, err := joinDateTime(parts, 2)
		if err != nil || j >= len(parts) {
			return ErrReplyInvalidInput
		}
		qty, err := strconv.Atoi(parts[j])
		if err != nil {
			return ErrReplyInvalidInput
		}
		bookingID, showID, err := svc.OrderTickets(movie, startTime, qty, time.Now())
		if err != nil {
			return errorReply(err)
		}
		return fmt.Sprintf("%s %s %s", ReplyOK, bookingID, showID)

	case "CANCEL_BOOKING":
		if len(parts) != 2 {
			return ErrReplyInvalidInput
		}
		refund, err := svc.CancelBooking(parts[1], time.Now())
		if err != nil {
			return errorReply(err)
		}
		return fmt.Sprintf("%s REFUND=%d", ReplyOK, refund)

	case "REPORT_REVENUE":
		if len(parts) == 1 {
			totals := svc.AllRevenue()
			entries := make([]string, 0, len(totals))
			for cinema, total := range totals {
				entries = append(entries, fmt.Sprintf("%s:%d", cinema, total))
			}
			return strings.Join(entries, " ")
		}
		return strconv.FormatInt(svc.RevenueFor(parts[1]), 10)
	}

	return ReplyUnknownCommand
}

// joinDateTime reads a timestamp starting at parts[i] and returns it
// with the index of the next unread token. Both forms are accepted:
// separate "YYYY-MM-DD" and "HH:MM" tokens, or a single token carrying
// the whole canonical layout (quotes, if any, are stripped).
func joinDateTime(parts []string, i int) (time.Time, int, error) {
	if i+1 < len(parts) && strings.Contains(parts[i], "-") && strings.Contains(parts[i+1], ":") {
		t, err := utils.ParseDateTime(stripQuotes(parts[i]) + " " + stripQuotes(parts[i+1]))
		return t, i + 2, err
	}
	t, err := utils.ParseDateTime(stripQuotes(parts[i]))
	return t, i + 1, err
}

func stripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}

// errorReply translates a sentinel error from the core into its fixed
// reply string.
func errorReply(err error) string {
	switch {
	case errors.Is(err, repository.ErrShowNotFound):
		return ErrReplyShowNotFound
	case errors.Is(err, repository.ErrBookingNotFound):
		return ErrReplyBookingNotFound
	case errors.Is(err, repository.ErrShowAlreadyStarted):
		return ErrReplyShowAlreadyStarted
	case errors.Is(err, repository.ErrShowAlreadyEnded):
		return ErrReplyShowAlreadyEnded
	case errors.Is(err, repository.ErrCannotEndBeforeStart):
		return ErrReplyCannotEndBeforeStart
	case errors.Is(err, repository.ErrBookingUnavailable):
		return ErrReplyBookingUnavailable
	case errors.Is(err, repository.ErrAlreadyCancelled):
		return ErrReplyAlreadyCancelled
	default:
		// repository.ErrInvalidInput and anything unforeseen.
		return ErrReplyInvalidInput
	}
}
