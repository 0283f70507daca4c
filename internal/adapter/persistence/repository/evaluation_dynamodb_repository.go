package repository

import (
	"context"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEvaluationsTableName = "evaluations"

// Money and area are kept in the decimal-comma form other clients of the table
// read ("45,50", "1.200,5").
type serviceFinancialsItem struct {
	Area      string `dynamodbav:"area"`
	UnitPrice string `dynamodbav:"unit_price"`
	Discount  string `dynamodbav:"discount"`
}

type financialsItem struct {
	Insect        serviceFinancialsItem `dynamodbav:"insect"`
	Rodent        serviceFinancialsItem `dynamodbav:"rodent"`
	Termite       serviceFinancialsItem `dynamodbav:"termite"`
	TotalValue    string                `dynamodbav:"total_value"`
	TotalDiscount string                `dynamodbav:"total_discount"`
	TotalFinal    string                `dynamodbav:"total_final"`
}

type servicesItem struct {
	Insect  bool `dynamodbav:"insect"`
	Rodent  bool `dynamodbav:"rodent"`
	Termite bool `dynamodbav:"termite"`
}

type generalChecklistItem struct {
	EmployeeIdentified bool `dynamodbav:"employee_identified"`
	EPIUsed            bool `dynamodbav:"epi_used"`
	DamageRecovered    bool `dynamodbav:"damage_recovered"`
	ProofDelivered     bool `dynamodbav:"proof_delivered"`
}

type serviceChecklistItem struct {
	ExecutedArea           string `dynamodbav:"executed_area"`
	FollowedSchedule       bool   `dynamodbav:"followed_schedule"`
	DelayDays              int    `dynamodbav:"delay_days"`
	TrapsOrBaitsMaintained bool   `dynamodbav:"traps_or_baits_maintained"`
	HadExtraCall           bool   `dynamodbav:"had_extra_call"`
	ExtraCallOnTime        bool   `dynamodbav:"extra_call_on_time"`
	ExtraCallEffective     bool   `dynamodbav:"extra_call_effective"`
}

type termiteChecklistItem struct {
	ChemicalBarrierApplied bool `dynamodbav:"chemical_barrier_applied"`
}

type evaluationItem struct {
	ID             string `dynamodbav:"id"`
	CreatedBy      string `dynamodbav:"created_by"`
	EvaluatorName  string `dynamodbav:"evaluator_name"`
	EvaluatorUnit  string `dynamodbav:"evaluator_unit"`
	EvaluatorRole  string `dynamodbav:"evaluator_role"`
	ReferenceMonth string `dynamodbav:"reference_month"`
	ReferenceYear  int    `dynamodbav:"reference_year"`

	Services   servicesItem   `dynamodbav:"services"`
	Financials financialsItem `dynamodbav:"financials"`

	General generalChecklistItem  `dynamodbav:"general_checklist"`
	Insect  *serviceChecklistItem `dynamodbav:"insect_checklist,omitempty"`
	Rodent  *serviceChecklistItem `dynamodbav:"rodent_checklist,omitempty"`
	Termite *termiteChecklistItem `dynamodbav:"termite_checklist,omitempty"`

	Unit               string `dynamodbav:"unit"`
	Location           string `dynamodbav:"location"`
	PrimaryServiceType string `dynamodbav:"primary_service_type"`
	ComplianceScore    int    `dynamodbav:"compliance_score"`
	Status             string `dynamodbav:"status"`

	RecordedAt string `dynamodbav:"recorded_at"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// EvaluationDynamoRepository persists Evaluation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EvaluationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEvaluationRepository = (*EvaluationDynamoRepository)(nil)

func NewEvaluationDynamoRepository(ddb DynamoDBAPI, tableName string) *EvaluationDynamoRepository {
	return &EvaluationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEvaluationsTableName),
	}
}

func (r *EvaluationDynamoRepository) Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	av, err := attributevalue.MarshalMap(toEvaluationItem(e))
	if err != nil {
		return entities.Evaluation{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, "id", av); err != nil {
		return entities.Evaluation{}, err
	}
	return e, nil
}

func (r *EvaluationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Evaluation, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, "id", id)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if len(raw) == 0 {
		return entities.Evaluation{}, nil
	}
	return unmarshalEvaluation(raw)
}

func (r *EvaluationDynamoRepository) List(ctx context.Context) ([]entities.Evaluation, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Evaluation, 0, len(raws))
	for _, raw := range raws {
		e, err := unmarshalEvaluation(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Update replaces the stored document. Concurrent editors are last-write-wins.
func (r *EvaluationDynamoRepository) Update(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	av, err := attributevalue.MarshalMap(toEvaluationItem(e))
	if err != nil {
		return entities.Evaluation{}, err
	}
	found, err := putExisting(ctx, r.ddb, r.tableName, "id", av)
	if err != nil || !found {
		return entities.Evaluation{}, err
	}
	return e, nil
}

func (r *EvaluationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EvaluationStatus) (entities.Evaluation, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 keyOf("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Evaluation{}, nil
		}
		return entities.Evaluation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Evaluation{}, nil
	}
	return unmarshalEvaluation(out.Attributes)
}

func (r *EvaluationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, "id", id)
}

func unmarshalEvaluation(raw map[string]types.AttributeValue) (entities.Evaluation, error) {
	var it evaluationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Evaluation{}, err
	}
	return fromEvaluationItem(it), nil
}

func toServiceFinancialsItem(f entities.ServiceFinancials) serviceFinancialsItem {
	return serviceFinancialsItem{
		Area:      money.FormatDecimal(f.AreaSquareMeters),
		UnitPrice: money.FormatBRL(f.UnitPriceCents),
		Discount:  money.FormatBRL(f.DiscountCents),
	}
}

func fromServiceFinancialsItem(it serviceFinancialsItem) entities.ServiceFinancials {
	return entities.ServiceFinancials{
		AreaSquareMeters: money.ParseDecimal(it.Area),
		UnitPriceCents:   money.ParseBRL(it.UnitPrice),
		DiscountCents:    money.ParseBRL(it.Discount),
	}
}

func toServiceChecklistItem(c *entities.ServiceChecklist) *serviceChecklistItem {
	if c == nil {
		return nil
	}
	return &serviceChecklistItem{
		ExecutedArea:           money.FormatDecimal(c.ExecutedAreaSquareMeters),
		FollowedSchedule:       c.FollowedSchedule,
		DelayDays:              c.DelayDays,
		TrapsOrBaitsMaintained: c.TrapsOrBaitsMaintained,
		HadExtraCall:           c.HadExtraCall,
		ExtraCallOnTime:        c.ExtraCallOnTime,
		ExtraCallEffective:     c.ExtraCallEffective,
	}
}

func fromServiceChecklistItem(it *serviceChecklistItem) *entities.ServiceChecklist {
	if it == nil {
		return nil
	}
	return &entities.ServiceChecklist{
		ExecutedAreaSquareMeters: money.ParseDecimal(it.ExecutedArea),
		FollowedSchedule:         it.FollowedSchedule,
		DelayDays:                it.DelayDays,
		TrapsOrBaitsMaintained:   it.TrapsOrBaitsMaintained,
		HadExtraCall:             it.HadExtraCall,
		ExtraCallOnTime:          it.ExtraCallOnTime,
		ExtraCallEffective:       it.ExtraCallEffective,
	}
}

func toEvaluationItem(e entities.Evaluation) evaluationItem {
	it := evaluationItem{
		ID:             e.ID,
		CreatedBy:      e.CreatedBy,
		EvaluatorName:  e.EvaluatorName,
		EvaluatorUnit:  e.EvaluatorUnit,
		EvaluatorRole:  string(e.EvaluatorRole),
		ReferenceMonth: e.ReferenceMonth,
		ReferenceYear:  e.ReferenceYear,
		Services: servicesItem{
			Insect:  e.Services.Insect,
			Rodent:  e.Services.Rodent,
			Termite: e.Services.Termite,
		},
		Financials: financialsItem{
			Insect:        toServiceFinancialsItem(e.Financials.Details.Insect),
			Rodent:        toServiceFinancialsItem(e.Financials.Details.Rodent),
			Termite:       toServiceFinancialsItem(e.Financials.Details.Termite),
			TotalValue:    money.FormatBRL(e.Financials.Totals.TotalValueCents),
			TotalDiscount: money.FormatBRL(e.Financials.Totals.TotalDiscountCents),
			TotalFinal:    money.FormatBRL(e.Financials.Totals.TotalFinalCents),
		},
		General: generalChecklistItem{
			EmployeeIdentified: e.General.EmployeeIdentified,
			EPIUsed:            e.General.EPIUsed,
			DamageRecovered:    e.General.DamageRecovered,
			ProofDelivered:     e.General.ProofDelivered,
		},
		Insect:             toServiceChecklistItem(e.Insect),
		Rodent:             toServiceChecklistItem(e.Rodent),
		Unit:               e.Unit,
		Location:           e.Location,
		PrimaryServiceType: string(e.PrimaryServiceType),
		ComplianceScore:    e.ComplianceScore,
		Status:             string(e.Status),
		RecordedAt:         formatTime(e.RecordedAt),
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
	if e.Termite != nil {
		it.Termite = &termiteChecklistItem{ChemicalBarrierApplied: e.Termite.ChemicalBarrierApplied}
	}
	return it
}

func fromEvaluationItem(it evaluationItem) entities.Evaluation {
	e := entities.Evaluation{
		ID:             it.ID,
		CreatedBy:      it.CreatedBy,
		EvaluatorName:  it.EvaluatorName,
		EvaluatorUnit:  it.EvaluatorUnit,
		EvaluatorRole:  entities.Role(it.EvaluatorRole),
		ReferenceMonth: it.ReferenceMonth,
		ReferenceYear:  it.ReferenceYear,
		Services: entities.ServiceSelection{
			Insect:  it.Services.Insect,
			Rodent:  it.Services.Rodent,
			Termite: it.Services.Termite,
		},
		Financials: entities.EvaluationFinancials{
			Details: entities.FinancialDetails{
				Insect:  fromServiceFinancialsItem(it.Financials.Insect),
				Rodent:  fromServiceFinancialsItem(it.Financials.Rodent),
				Termite: fromServiceFinancialsItem(it.Financials.Termite),
			},
			Totals: entities.FinancialTotals{
				TotalValueCents:    money.ParseBRL(it.Financials.TotalValue),
				TotalDiscountCents: money.ParseBRL(it.Financials.TotalDiscount),
				TotalFinalCents:    money.ParseBRL(it.Financials.TotalFinal),
			},
		},
		General: entities.GeneralChecklist{
			EmployeeIdentified: it.General.EmployeeIdentified,
			EPIUsed:            it.General.EPIUsed,
			DamageRecovered:    it.General.DamageRecovered,
			ProofDelivered:     it.General.ProofDelivered,
		},
		Insect:             fromServiceChecklistItem(it.Insect),
		Rodent:             fromServiceChecklistItem(it.Rodent),
		Unit:               it.Unit,
		Location:           it.Location,
		PrimaryServiceType: entities.ServiceType(it.PrimaryServiceType),
		ComplianceScore:    it.ComplianceScore,
		Status:             entities.EvaluationStatus(it.Status),
		RecordedAt:         parseTime(it.RecordedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.Termite != nil {
		e.Termite = &entities.TermiteChecklist{ChemicalBarrierApplied: it.Termite.ChemicalBarrierApplied}
	}
	return e
}
