package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/models"
)

type CommissionReleaseJob struct {
}

func (j *CommissionReleaseJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:00:00").Do(releaseCommissions)
	<-s.Start()
}

type GroupCommission struct {
	MemberID    uint64
	EarnedTotal decimal.Decimal
	Friends     uint64
}

// releaseCommissions rolls yesterday's per-deposit commission rows up into
// one summary row per earning member.
func releaseCommissions() {
	var group_commissions []*GroupCommission

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	config.DataBase.
		Model(&models.Commission{}).
		Select("member_id", "SUM(earn_amount) as earned_total", "COUNT(DISTINCT friend_uid) as friends").
		Where("CAST(\"created_at\" AS DATE) = ?", yesterday).
		Group("member_id").
		Find(&group_commissions)

	for _, group_commission := range group_commissions {
		release_commission := &models.ReleaseCommission{
			MemberID:    group_commission.MemberID,
			EarnedTotal: group_commission.EarnedTotal,
			Friends:     group_commission.Friends,
		}

		config.DataBase.Create(&release_commission)
	}
}
