// internal/bot/bot.go
package bot

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"purchase-tracker/internal/domain"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/encoding/charmap"
)

const latestLimit = 10

type PurchaseReader interface {
	GetAll(ctx context.Context) ([]domain.Purchase, error)
	GetOne(ctx context.Context, id int) (*domain.Purchase, error)
}

type LocationReader interface {
	GetAll(ctx context.Context) ([]domain.PurchaseLocation, error)
}

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot: read-only фронт к покупкам в Telegram.
type Bot struct {
	purchases PurchaseReader
	locations LocationReader
}

func New(purchases PurchaseReader, locations LocationReader) *Bot {
	return &Bot{purchases: purchases, locations: locations}
}

const helpText = "🧾 *Учёт покупок*\n\n" +
	"Команды:\n" +
	"`/purchases` — последние 10 покупок\n" +
	"`/purchase 12` — покупка с расходами и оплатами\n" +
	"`/locations` — места покупок"

// HandleUpdate обрабатывает одно обновление и отправляет ответ в тот же чат.
func (b *Bot) HandleUpdate(ctx context.Context, api Sender, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	text := SanitizeInput(FixEncoding(update.Message.Text))
	slog.Info("📥 Получено сообщение", "chat_id", update.Message.Chat.ID, "text", text)

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, b.Reply(ctx, text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := api.Send(msg); err != nil {
		slog.Error("Не удалось отправить ответ", "chat_id", update.Message.Chat.ID, "error", err)
	}
}

// Reply возвращает Markdown-ответ на команду.
func (b *Bot) Reply(ctx context.Context, text string) string {
	cmd, arg, _ := strings.Cut(text, " ")
	// /purchases@my_bot в группах
	cmd, _, _ = strings.Cut(cmd, "@")

	var (
		reply string
		err   error
	)
	switch cmd {
	case "/start", "/help":
		reply = helpText
	case "/purchases":
		reply, err = b.latestPurchases(ctx)
	case "/purchase":
		reply, err = b.purchaseDetails(ctx, strings.TrimSpace(arg))
	case "/locations":
		reply, err = b.listLocations(ctx)
	default:
		reply = "Неизвестная команда. Напиши /help"
	}

	if err != nil {
		slog.Error("Bot command failed", "command", cmd, "error", err)
		return "❌ Ошибка: не удалось получить данные"
	}
	return reply
}

func (b *Bot) latestPurchases(ctx context.Context) (string, error) {
	purchases, err := b.purchases.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if len(purchases) == 0 {
		return "📭 Покупок пока нет", nil
	}

	// Новые сверху
	slices.SortFunc(purchases, func(a, b domain.Purchase) int {
		if c := b.PurchaseDate.Compare(a.PurchaseDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if len(purchases) > latestLimit {
		purchases = purchases[:latestLimit]
	}

	lines := []string{"🧾 *Последние покупки*"}
	for _, p := range purchases {
		line := fmt.Sprintf("`#%d` %s — *%s*", p.ID, p.PurchaseDate.Format("02.01.2006"), p.TotalValue.StringFixed(2))
		if p.PurchaseLocation != nil {
			line += " · " + escape(p.PurchaseLocation.LocationName)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) purchaseDetails(ctx context.Context, arg string) (string, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return "❌ Используй: /purchase <id>", nil
	}

	p, err := b.purchases.GetOne(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return fmt.Sprintf("📭 Покупка #%d не найдена", id), nil
	}

	lines := []string{
		fmt.Sprintf("🧾 *Покупка #%d*", p.ID),
		fmt.Sprintf("Дата: %s", p.PurchaseDate.Format("02.01.2006 15:04")),
		fmt.Sprintf("Сумма: *%s*", p.TotalValue.StringFixed(2)),
	}
	if p.Description != nil {
		lines = append(lines, escape(*p.Description))
	}
	if p.PurchaseLocation != nil {
		lines = append(lines, "Место: "+escape(p.PurchaseLocation.LocationName))
	}

	if len(p.Expenses) > 0 {
		lines = append(lines, "\n*Расходы*")
		for _, e := range p.Expenses {
			line := fmt.Sprintf("- %s: %s", escape(e.ExpenseType), e.Value.StringFixed(2))
			if e.Description != nil {
				line += " (" + escape(*e.Description) + ")"
			}
			lines = append(lines, line)
		}
	}

	if len(p.PurchasePaymentMethods) > 0 {
		lines = append(lines, "\n*Оплата*")
		for _, a := range p.PurchasePaymentMethods {
			name := fmt.Sprintf("способ #%d", a.PaymentMethodID)
			if a.PaymentMethod != nil {
				name = escape(a.PaymentMethod.PaymentMethodName)
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", name, a.PaidValue.StringFixed(2)))
		}
	}

	return strings.Join(lines, "\n"), nil
}

func (b *Bot) listLocations(ctx context.Context) (string, error) {
	locations, err := b.locations.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if len(locations) == 0 {
		return "📭 Мест покупок пока нет", nil
	}

	lines := []string{"📍 *Места покупок*"}
	for _, l := range locations {
		line := fmt.Sprintf("- *%s* (%s)", escape(l.LocationName), escape(l.LocationType))
		if l.Address != nil {
			line += ", " + escape(*l.Address)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// FixEncoding чинит текст, пришедший в windows-1251 вместо UTF-8.
func FixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	fixed, err := charmap.Windows1251.NewDecoder().String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	// Если не получилось, выкидываем невалидные байты
	return strings.ToValidUTF8(s, "")
}

// SanitizeInput сводит любые пробельные символы к одиночным пробелам.
func SanitizeInput(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
