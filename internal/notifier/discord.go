package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// ReservationEvent is what the front-desk channel gets pinged about
// after a booking has already been accepted upstream.
type ReservationEvent struct {
	ReservationID int
	Updated       bool
	GuestName     string
	RoomType      string
	BoardType     string
	CheckIn       string
	CheckOut      string
	Adults        int
	Children      int
	TotalPrice    float64
	Currency      string
}

type Notifier interface {
	NotifyReservation(event ReservationEvent) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyReservation(event ReservationEvent) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	status := "new reservation 🎉"
	if event.Updated {
		status = "reservation updated"
	}

	message := fmt.Sprintf("🏨 **Reservation #%d**\n**Status:** %s\n**Guest:** %s\n**Room:** %s (%s)\n**Dates:** %s - %s\n**Occupancy:** %d adults, %d children\n**Total:** %.2f %s",
		event.ReservationID,
		status,
		event.GuestName,
		event.RoomType,
		event.BoardType,
		event.CheckIn,
		event.CheckOut,
		event.Adults,
		event.Children,
		event.TotalPrice,
		event.Currency,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
