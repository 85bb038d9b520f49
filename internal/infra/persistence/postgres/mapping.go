package postgres

import (
	"wholesale/internal/domain/entity"
	"wholesale/internal/infra/persistence/model"
)

// Mapping between persistence models and domain entities. Kept in one place
// so repositories stay focused on query logic.

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		Name:         userM.Name,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Role:         entity.Role(userM.Role),
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func toRecorderProjection(userM *model.UserModel) *entity.RecordedBy {
	if userM == nil {
		return nil
	}

	return &entity.RecordedBy{
		Name:  userM.Name,
		Email: userM.Email,
	}
}

func fromProcurementDomain(procurement *entity.Procurement) *model.ProcurementModel {
	return &model.ProcurementModel{
		ID:           procurement.ID,
		ProduceName:  procurement.ProduceName,
		ProduceType:  procurement.ProduceType,
		Date:         procurement.Date,
		Time:         procurement.Time,
		Tonnage:      procurement.Tonnage,
		Cost:         procurement.Cost,
		DealerName:   procurement.DealerName,
		Branch:       procurement.Branch.String(),
		Contact:      procurement.Contact,
		SellingPrice: procurement.SellingPrice,
		RecordedBy:   procurement.RecordedBy,
	}
}

func toProcurementDomain(procurementM *model.ProcurementModel) *entity.Procurement {
	return &entity.Procurement{
		ID:           procurementM.ID,
		ProduceName:  procurementM.ProduceName,
		ProduceType:  procurementM.ProduceType,
		Date:         procurementM.Date,
		Time:         procurementM.Time,
		Tonnage:      procurementM.Tonnage,
		Cost:         procurementM.Cost,
		DealerName:   procurementM.DealerName,
		Branch:       entity.Branch(procurementM.Branch),
		Contact:      procurementM.Contact,
		SellingPrice: procurementM.SellingPrice,
		RecordedBy:   procurementM.RecordedBy,
		Recorder:     toRecorderProjection(procurementM.Recorder),
		CreatedAt:    procurementM.CreatedAt,
	}
}

func fromSaleDomain(sale *entity.Sale) *model.SaleModel {
	saleM := &model.SaleModel{
		ID:         sale.ID,
		Type:       sale.Type.String(),
		RecordedBy: sale.RecordedBy,
	}

	if sale.Cash != nil {
		saleM.CashSale = &model.CashSaleModel{
			ProduceName:    sale.Cash.ProduceName,
			Tonnage:        sale.Cash.Tonnage,
			AmountPaid:     sale.Cash.AmountPaid,
			BuyerName:      sale.Cash.BuyerName,
			SalesAgentName: sale.Cash.SalesAgentName,
			Date:           sale.Cash.Date,
			Time:           sale.Cash.Time,
		}
	}

	if sale.Credit != nil {
		saleM.CreditSale = &model.CreditSaleModel{
			BuyerName:      sale.Credit.BuyerName,
			NationalID:     sale.Credit.NationalID,
			Location:       sale.Credit.Location,
			Contacts:       sale.Credit.Contacts,
			AmountDue:      sale.Credit.AmountDue,
			SalesAgentName: sale.Credit.SalesAgentName,
			DueDate:        sale.Credit.DueDate,
			ProduceName:    sale.Credit.ProduceName,
			ProduceType:    sale.Credit.ProduceType,
			Tonnage:        sale.Credit.Tonnage,
			DispatchDate:   sale.Credit.DispatchDate,
			IsPaid:         sale.Credit.IsPaid,
			PaymentDate:    sale.Credit.PaymentDate,
		}
	}

	return saleM
}

func toSaleDomain(saleM *model.SaleModel) *entity.Sale {
	sale := &entity.Sale{
		ID:         saleM.ID,
		Type:       entity.SaleType(saleM.Type),
		RecordedBy: saleM.RecordedBy,
		Recorder:   toRecorderProjection(saleM.Recorder),
		CreatedAt:  saleM.CreatedAt,
	}

	if saleM.CashSale != nil {
		sale.Cash = &entity.CashSale{
			ProduceName:    saleM.CashSale.ProduceName,
			Tonnage:        saleM.CashSale.Tonnage,
			AmountPaid:     saleM.CashSale.AmountPaid,
			BuyerName:      saleM.CashSale.BuyerName,
			SalesAgentName: saleM.CashSale.SalesAgentName,
			Date:           saleM.CashSale.Date,
			Time:           saleM.CashSale.Time,
		}
	}

	if saleM.CreditSale != nil {
		sale.Credit = &entity.CreditSale{
			BuyerName:      saleM.CreditSale.BuyerName,
			NationalID:     saleM.CreditSale.NationalID,
			Location:       saleM.CreditSale.Location,
			Contacts:       saleM.CreditSale.Contacts,
			AmountDue:      saleM.CreditSale.AmountDue,
			SalesAgentName: saleM.CreditSale.SalesAgentName,
			DueDate:        saleM.CreditSale.DueDate,
			ProduceName:    saleM.CreditSale.ProduceName,
			ProduceType:    saleM.CreditSale.ProduceType,
			Tonnage:        saleM.CreditSale.Tonnage,
			DispatchDate:   saleM.CreditSale.DispatchDate,
			IsPaid:         saleM.CreditSale.IsPaid,
			PaymentDate:    saleM.CreditSale.PaymentDate,
		}
	}

	return sale
}
