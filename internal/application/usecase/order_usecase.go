package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// OrderUseCase creación de pedidos (pública) y cambio de estado (privilegiada).
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// Create valida el stock de cada ítem (en el orden de entrada) y registra el
// pedido. Si algún ítem supera el stock actual se aborta todo con un error que
// nombra el ítem: no se crean pedidos parciales. El total se redondea a
// unidades enteras y el pedido nace en pending_whatsapp.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if utf8.RuneCountInString(in.Customer.Name) < 2 {
		return nil, fmt.Errorf("%w: el nombre es muy corto", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.Customer.Phone) < 6 {
		return nil, fmt.Errorf("%w: el teléfono es muy corto", domain.ErrValidation)
	}
	for _, item := range in.Items {
		if item.ID == 0 || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: ítem de pedido inválido", domain.ErrValidation)
		}
	}

	// Re-lectura de stock por ítem justo antes de insertar. Es la única red de
	// seguridad del lado cliente; las constraints del servicio de datos hacen el resto.
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.StockQty < item.Quantity {
			return nil, &domain.InsufficientStockError{Title: item.Title}
		}
	}

	snapshot := make([]entity.OrderLine, 0, len(in.Items))
	for _, item := range in.Items {
		snapshot = append(snapshot, entity.OrderLine{
			ProductID: item.ID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &entity.Order{
		ID:              uuid.New().String(),
		CustomerName:    in.Customer.Name,
		CustomerContact: in.Customer.Phone,
		Snapshot:        snapshot,
		TotalAmount:     in.Total.Round(0),
		Status:          entity.OrderStatusPendingWhatsapp,
		IsGift:          in.IsGift,
		CreatedAt:       time.Now(),
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{OrderID: order.ID, IsGift: order.IsGift}, nil
}

// UpdateStatus cambia el estado de un pedido (solo administradores; la
// autorización la hace el handler antes de llamar aquí).
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return nil, fmt.Errorf("%w: id de pedido inválido", domain.ErrValidation)
	}
	if !entity.ValidOrderStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado de pedido desconocido", domain.ErrValidation)
	}

	order, err := uc.orderRepo.UpdateStatus(ctx, in.ID, in.Status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemInput, 0, len(o.Snapshot))
	for _, line := range o.Snapshot {
		items = append(items, dto.OrderItemInput{
			ID:       line.ProductID,
			Title:    line.Title,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerContact: o.CustomerContact,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		IsGift:          o.IsGift,
		CreatedAt:       o.CreatedAt,
	}
}
