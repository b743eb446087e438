package repositories

type Repos struct {
	User           UserRepo
	Account        AccountRepo
	Project        ProjectRepo
	Task           TaskRepo
	Update         UpdateRepo
	Attachment     AttachmentRepo
	DeliveryStatus DeliveryStatusRepo
	Audit          AuditRepo
}

func New() *Repos {
	return &Repos{
		User:           &DBUserRepo{},
		Account:        &DBAccountRepo{},
		Project:        &DBProjectRepo{},
		Task:           &DBTaskRepo{},
		Update:         &DBUpdateRepo{},
		Attachment:     &DBAttachmentRepo{},
		DeliveryStatus: &DBDeliveryStatusRepo{},
		Audit:          &DBAuditRepo{},
	}
}
