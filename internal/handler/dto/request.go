package dto

type CreateUserRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Profiles       []string `json:"profiles"`
	TelegramChatID *int64   `json:"telegram_chat_id"`
}

type UpdateProfilesRequest struct {
	Profiles []string `json:"profiles" binding:"required,min=1"`
}

type CreateEventRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	Date              string `json:"date" binding:"required"`
	RequiresTransport bool   `json:"requires_transport"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ConfirmRequest struct {
	Response   string `json:"response" binding:"required"`
	Companions int    `json:"companions"`
}

type AttendanceMarkRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Status string `json:"status" binding:"required"`
}

type TakeRollRequest struct {
	Date  string                  `json:"date" binding:"required"`
	Type  string                  `json:"type" binding:"required"`
	Marks []AttendanceMarkRequest `json:"marks" binding:"required,min=1,dive"`
}

type CreateTransportRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

type AssignTransportRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type VehicleCountRequest struct {
	Count int `json:"count" binding:"required,gt=0"`
}

type ResizeVehicleRequest struct {
	VehicleIndex int `json:"vehicle_index"`
	Capacity     int `json:"capacity" binding:"required,gt=0"`
}

type VehicleCostRequest struct {
	VehicleIndex int     `json:"vehicle_index"`
	Cost         float64 `json:"cost"`
}

type SetCostsRequest struct {
	TotalCost    float64              `json:"total_cost"`
	VehicleCosts []VehicleCostRequest `json:"vehicle_costs"`
}

type AssignSeatRequest struct {
	VehicleIndex  int    `json:"vehicle_index"`
	SeatIndex     int    `json:"seat_index"`
	PassengerName string `json:"passenger_name" binding:"required"`
}

type VacateSeatRequest struct {
	VehicleIndex int `json:"vehicle_index"`
	SeatIndex    int `json:"seat_index"`
}

type OpenAccountRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type TransactionRequest struct {
	Type    string  `json:"type" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Concept string  `json:"concept" binding:"required"`
}

type QuotaRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreatePaymentConceptRequest struct {
	Concept     string         `json:"concept" binding:"required"`
	Description string         `json:"description"`
	DueDate     string         `json:"due_date"`
	Quotas      []QuotaRequest `json:"quotas" binding:"required,min=1,dive"`
}

type PartialPaymentRequest struct {
	UserID  string  `json:"user_id" binding:"required,uuid"`
	Concept string  `json:"concept" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Note    string  `json:"note"`
}

type CreateInsumoRequest struct {
	Nombre             string  `json:"nombre" binding:"required"`
	Categoria          string  `json:"categoria" binding:"required"`
	Descripcion        string  `json:"descripcion"`
	CantidadDisponible int     `json:"cantidad_disponible" binding:"min=0"`
	CantidadMinima     int     `json:"cantidad_minima" binding:"min=0"`
	CostoUnitario      float64 `json:"costo_unitario" binding:"min=0"`
	Proveedor          string  `json:"proveedor"`
}

type UpdateInsumoRequest struct {
	Nombre         string  `json:"nombre" binding:"required"`
	Categoria      string  `json:"categoria" binding:"required"`
	Descripcion    string  `json:"descripcion"`
	CantidadMinima int     `json:"cantidad_minima" binding:"min=0"`
	CostoUnitario  float64 `json:"costo_unitario" binding:"min=0"`
	Proveedor      string  `json:"proveedor"`
}

type CreateSolicitudRequest struct {
	InsumoID           string `json:"insumo_id" binding:"required,uuid"`
	CantidadSolicitada int    `json:"cantidad_solicitada" binding:"required,gt=0"`
	Observaciones      string `json:"observaciones"`
}

type ResolveSolicitudRequest struct {
	Comentario string `json:"comentario"`
}

type AdjustStockRequest struct {
	Tipo     string `json:"tipo" binding:"required"`
	Cantidad int    `json:"cantidad" binding:"min=0"`
	Motivo   string `json:"motivo" binding:"required"`
}

type CreateDocumentRequest struct {
	Titulo          string   `json:"titulo" binding:"required"`
	Descripcion     string   `json:"descripcion"`
	RequiredUserIDs []string `json:"required_user_ids" binding:"required,min=1"`
}

type ToggleDeliveryRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type ScoresRequest struct {
	Canto struct {
		Afinacion    int `json:"afinacion" binding:"required,min=1,max=4"`
		RangoVocal   int `json:"rango_vocal" binding:"required,min=1,max=4"`
		ControlVocal int `json:"control_vocal" binding:"required,min=1,max=4"`
		Expresividad int `json:"expresividad" binding:"required,min=1,max=4"`
	} `json:"canto"`
	Instrumento struct {
		Tecnica      int `json:"tecnica" binding:"required,min=1,max=4"`
		Precision    int `json:"precision" binding:"required,min=1,max=4"`
		Creatividad  int `json:"creatividad" binding:"required,min=1,max=4"`
		Versatilidad int `json:"versatilidad" binding:"required,min=1,max=4"`
	} `json:"instrumento"`
	Compromiso struct {
		AsistenciaEnsayos    int `json:"asistencia_ensayos" binding:"required,min=1,max=4"`
		ParticipacionEventos int `json:"participacion_eventos" binding:"required,min=1,max=4"`
		Colaboracion         int `json:"colaboracion" binding:"required,min=1,max=4"`
	} `json:"compromiso"`
}

type EvaluationRequest struct {
	UserID      string        `json:"user_id" binding:"required,uuid"`
	Scores      ScoresRequest `json:"scores" binding:"required"`
	Comentarios string        `json:"comentarios"`
}

type SongRequest struct {
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author"`
	Lyrics          string `json:"lyrics"`
	Instrumentation string `json:"instrumentation"`
}
