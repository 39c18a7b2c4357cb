package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date     time.Time          // Дата, на которую запрашивались слоты
	Reserved []types.TimeString // Занятое время, по возрастанию
	Slots    []types.TimeString // Свободные слоты с учетом текущего времени
}
