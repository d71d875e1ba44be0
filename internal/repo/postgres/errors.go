package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

// ErrConnectionDown — базовая ошибка «хранилище недоступно»: обрыв соединения,
// погашенный сервер, закрытый пул. Потребитель по этой ошибке останавливает
// цикл чтения; обычные ошибки запроса (constraint и т.п.) так не помечаются.
var ErrConnectionDown = errors.New("storage connection down")

// Коды SQLSTATE, означающие потерю сервера:
// класс 08 — connection exception; 57P01..57P03 — shutdown/crash/cannot connect.
func isConnectionCode(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "57P01", "57P02", "57P03":
		return true
	}
	return false
}

// isConnectionErr — классификация ошибки pgx: потеря соединения или нет.
func isConnectionErr(err error) bool {
	if err == nil {
		return false
	}

	// Таймаут/отмена контекста — не потеря соединения (context.DeadlineExceeded
	// реализует net.Error, поэтому исключаем до сетевой проверки).
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	// Закрытый пул (например, при остановке приложения).
	if errors.Is(err, puddle.ErrClosedPool) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isConnectionCode(pgErr.Code)
	}

	// Сетевые ошибки (dial/read/write) без SQLSTATE.
	var netErr net.Error
	return errors.As(err, &netErr)
}

// classifyError — обернуть ошибку операции; потери соединения дополнительно
// помечаются ErrConnectionDown, чтобы их можно было отличить через errors.Is.
func classifyError(op string, err error) error {
	if isConnectionErr(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrConnectionDown, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
