package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes member and admin alerts through a bot. Personal
// messages go to the member's own chat; fleet-wide alerts go to the group
// chat configured for the directiva.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	alertChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, alertChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, alertChatID: alertChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, alertChatID: alertChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketsIssued(ctx context.Context, event *domain.Event, tickets []domain.Ticket) {
	text := fmt.Sprintf(
		"*Boletos de transporte emitidos*\n\n"+"Evento: %s\n"+"Fecha: %s\n"+"Boletos: %d",
		event.Title, event.Date.Format("02/01/2006"), len(tickets),
	)
	n.sendToGroup(ctx, text)
}

func (n *TelegramNotifier) NotifySolicitudResolved(ctx context.Context, user *domain.User, s *domain.SolicitudInsumo) {
	var estado string
	switch s.Estado {
	case domain.SolicitudAprobada:
		estado = "aprobada"
	case domain.SolicitudRechazada:
		estado = "rechazada"
	case domain.SolicitudEntregada:
		estado = "entregada"
	default:
		estado = string(s.Estado)
	}

	text := fmt.Sprintf(
		"*Tu solicitud fue %s*\n\n"+"Insumo: %s\n"+"Cantidad: %d",
		estado, s.NombreInsumo, s.CantidadSolicitada,
	)
	if s.ComentarioAdmin != "" {
		text += fmt.Sprintf("\nComentario: %s", s.ComentarioAdmin)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentRequested(ctx context.Context, user *domain.User, p *domain.PaymentNotification) {
	text := fmt.Sprintf(
		"*Nueva solicitud de pago*\n\n"+"Concepto: %s\n"+"Monto: $%.2f",
		p.Concept, p.Amount,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyLowStock(ctx context.Context, items []*domain.Insumo) {
	var b strings.Builder
	b.WriteString("*Inventario bajo*\n")
	for _, i := range items {
		fmt.Fprintf(&b, "\n%s: %d (mínimo %d)", i.Nombre, i.CantidadDisponible, i.CantidadMinima)
	}
	n.sendToGroup(ctx, b.String())
}

func (n *TelegramNotifier) sendToGroup(ctx context.Context, text string) {
	if n.alertChatID == 0 {
		n.logger.Debug("group notification skipped (no alert chat)", logger.String("text", text))
		return
	}
	chatID := n.alertChatID
	n.send(ctx, &chatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
