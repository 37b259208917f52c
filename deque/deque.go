/**
 * 有界双端队列，用于保存每个连接最近的计算记录
 * 元素类型为 model.Calculation
 */

package deque

import "hxforge/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 队列容量
	Capacity() int

	// 获取队列中对应下标的元素，0 为队头
	Get(i int) model.Calculation

	// 正向遍历
	Traverse(f func(i int, item model.Calculation))

	// 在队列头部增加一个元素，队列已满时返回 false
	AddFirst(item model.Calculation) bool

	// 在队列结尾增加一个元素，队列已满时返回 false
	AddLast(item model.Calculation) bool

	// 在队列头部删除一个元素，队列为空时返回 false
	RemoveFirst() (model.Calculation, bool)

	// 在队列结尾删除一个元素，队列为空时返回 false
	RemoveLast() (model.Calculation, bool)

	IsFull() bool

	IsEmpty() bool
}
