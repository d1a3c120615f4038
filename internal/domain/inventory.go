package domain

import "time"

type InsumoCategory string

const (
	CategoryCuerdas       InsumoCategory = "cuerdas"
	CategoryUnas          InsumoCategory = "uñas"
	CategoryPlumillas     InsumoCategory = "plumillas"
	CategoryTalif         InsumoCategory = "talif"
	CategoryCapotrastos   InsumoCategory = "capotrastos"
	CategoryAfinadores    InsumoCategory = "afinadores"
	CategoryCorreas       InsumoCategory = "correas"
	CategoryFundas        InsumoCategory = "fundas"
	CategoryAccesorios    InsumoCategory = "accesorios"
	CategoryMantenimiento InsumoCategory = "mantenimiento"
	CategoryOtros         InsumoCategory = "otros"
)

var insumoCategories = map[InsumoCategory]struct{}{
	CategoryCuerdas: {}, CategoryUnas: {}, CategoryPlumillas: {},
	CategoryTalif: {}, CategoryCapotrastos: {}, CategoryAfinadores: {},
	CategoryCorreas: {}, CategoryFundas: {}, CategoryAccesorios: {},
	CategoryMantenimiento: {}, CategoryOtros: {},
}

func ValidInsumoCategory(c InsumoCategory) bool {
	_, ok := insumoCategories[c]
	return ok
}

type SolicitudStatus string

const (
	SolicitudPendiente SolicitudStatus = "pendiente"
	SolicitudAprobada  SolicitudStatus = "aprobada"
	SolicitudRechazada SolicitudStatus = "rechazada"
	SolicitudEntregada SolicitudStatus = "entregada"
)

type MovimientoType string

const (
	MovimientoEntrada MovimientoType = "entrada"
	MovimientoSalida  MovimientoType = "salida"
	MovimientoAjuste  MovimientoType = "ajuste"
)

type Insumo struct {
	ID                  string         `json:"id"`
	Nombre              string         `json:"nombre"`
	Categoria           InsumoCategory `json:"categoria"`
	Descripcion         string         `json:"descripcion"`
	CantidadDisponible  int            `json:"cantidad_disponible"`
	CantidadMinima      int            `json:"cantidad_minima"`
	CostoUnitario       float64        `json:"costo_unitario"`
	Proveedor           string         `json:"proveedor"`
	Activo              bool           `json:"activo"`
	FechaCreacion       time.Time      `json:"fecha_creacion"`
	FechaActualizacion  time.Time      `json:"fecha_actualizacion"`
}

// LowStock reports whether the item has fallen to its alert threshold.
func (i *Insumo) LowStock() bool {
	return i.Activo && i.CantidadDisponible <= i.CantidadMinima
}

type SolicitudInsumo struct {
	ID                 string          `json:"id"`
	UsuarioID          string          `json:"usuario_id"`
	NombreUsuario      string          `json:"nombre_usuario"`
	InsumoID           string          `json:"insumo_id"`
	NombreInsumo       string          `json:"nombre_insumo"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	CostoTotal         float64         `json:"costo_total"`
	Estado             SolicitudStatus `json:"estado"`
	Observaciones      string          `json:"observaciones"`
	ComentarioAdmin    string          `json:"comentario_admin"`
	FechaSolicitud     time.Time       `json:"fecha_solicitud"`
	FechaRespuesta     *time.Time      `json:"fecha_respuesta"`
}

type MovimientoInventario struct {
	ID               string         `json:"id"`
	InsumoID         string         `json:"insumo_id"`
	NombreInsumo     string         `json:"nombre_insumo"`
	Tipo             MovimientoType `json:"tipo"`
	Cantidad         int            `json:"cantidad"`
	CantidadAnterior int            `json:"cantidad_anterior"`
	CantidadNueva    int            `json:"cantidad_nueva"`
	Motivo           string         `json:"motivo"`
	UsuarioID        string         `json:"usuario_id"`
	NombreUsuario    string         `json:"nombre_usuario"`
	Fecha            time.Time      `json:"fecha"`
	SolicitudID      string         `json:"solicitud_id"`
}

type CreateInsumoInput struct {
	Nombre             string
	Categoria          InsumoCategory
	Descripcion        string
	CantidadDisponible int
	CantidadMinima     int
	CostoUnitario      float64
	Proveedor          string
}

type CreateSolicitudInput struct {
	UsuarioID          string
	InsumoID           string
	CantidadSolicitada int
	Observaciones      string
}
