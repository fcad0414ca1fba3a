package joborder

import (
	"context"
	"errors"
	"fmt"

	"github.com/loongsen/qcrelay/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no active product config matches the lot
var ErrNotFound = errors.New("job order not found")

// lookupQuery resolves a lot number to its plan, product size and customer.
// Aliases are lower case so every dialect returns the same column names.
// Identifiers stay unquoted: on Postgres the mirror lives in a dbo schema,
// its tables and columns fold to lower case, and bStatus is an integer column.
const lookupQuery = `SELECT P.Qty AS qty, P.Weight AS weight, C.Measurement AS measurement, P.StkCode AS stk_code,
	C.SizeWidth AS size_width, C.SizeLength AS size_length, C.SizeThick AS size_thick, Cust.CustName AS cust_name
FROM dbo.tblCS_Config_ProductNo AS C
INNER JOIN dbo.tblProd_Trans_PlanMs AS P ON C.StkCode = P.StkCode
LEFT OUTER JOIN dbo.tblCS_Trans_OrderMs AS O ON P.OrderID = O.TransID
LEFT OUTER JOIN dbo.tblSystem_Config_CustInfo AS Cust ON O.CustCode = Cust.CustID
WHERE C.bStatus = 1 AND P.LotNo = ?`

// Service looks up job orders in the plant database
type Service struct {
	db *gorm.DB
}

// NewService creates a job order lookup bound to a connection pool
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Find returns the job order projection for a lot number.
// When several plan rows match, the first one returned by the database wins.
func (s *Service) Find(ctx context.Context, lotNo string) (*models.JobOrder, error) {
	var rows []models.JobOrderRow
	if err := s.db.WithContext(ctx).Raw(lookupQuery, lotNo).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query job order %q: %w", lotNo, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].ToJobOrder(), nil
}
